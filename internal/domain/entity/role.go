package entity

// Marketplace roles carried in access tokens and consulted by the
// authorization policy table.
const (
	RoleClient    = "client"
	RoleDeliverer = "deliverer"
	RoleMerchant  = "merchant"
	RoleProvider  = "provider"
	RoleAdmin     = "admin"
	RoleSystem    = "system" // Internal actor for webhook-triggered transitions.
)
