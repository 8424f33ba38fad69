package models

// All returns every model for auto-migration, ordered so referenced
// tables exist before their dependents.
func All() []interface{} {
	return []interface{}{
		&UserModel{},
		&CustomerModel{},
		&RestaurantModel{},
		&CustomerLinkModel{},
		&TableModel{},
		&StaffModel{},
		&AttendanceModel{},
		&UnitModel{},
		&CategoryModel{},
		&ProductModel{},
		&ProductVariantModel{},
		&ComboSetModel{},
		&OrderModel{},
		&OrderItemModel{},
		&RawMaterialModel{},
		&ProductRawMaterialModel{},
		&StockLogModel{},
		&TransactionModel{},
		&FeedbackModel{},
		&WaiterCallModel{},
	}
}
