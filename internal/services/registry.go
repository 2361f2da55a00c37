package services

// ServiceContainer bundles every service for wiring in the app bootstrap.
type ServiceContainer struct {
	AuthService     AuthService
	UserService     UserService
	BiodataService  BiodataService
	FavoriteService FavoriteService
	ContactService  ContactService
	ReviewService   ReviewService
	AdminService    AdminService
	PaymentService  PaymentService
}
