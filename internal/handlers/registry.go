package handlers

// AppHandlers bundles every handler for route registration.
type AppHandlers struct {
	AuthHandler     *AuthHandler
	UserHandler     *UserHandler
	BiodataHandler  *BiodataHandler
	FavoriteHandler *FavoriteHandler
	ContactHandler  *ContactHandler
	ReviewHandler   *ReviewHandler
	AdminHandler    *AdminHandler
	PaymentHandler  *PaymentHandler
}
