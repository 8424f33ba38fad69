package v1

// BasePath is the URL prefix every route lives under. Frontends point
// VITE_API_BASE at <host>:<port>/api.
const BasePath = "/api"
