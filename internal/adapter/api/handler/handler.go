package handler

import (
	"github.com/labstack/echo/v4"

	"ubjewellers/internal/usecase"
)

// UseCases bundles everything the HTTP layer calls into.
type UseCases struct {
	Auth      *usecase.AuthUseCase
	User      *usecase.UserUseCase
	Product   *usecase.ProductUseCase
	Category  *usecase.CategoryUseCase
	Review    *usecase.ReviewUseCase
	Cart      *usecase.CartUseCase
	Wishlist  *usecase.WishlistUseCase
	Order     *usecase.OrderUseCase
	Payment   *usecase.PaymentUseCase
	Upload    *usecase.UploadUseCase
	Dashboard *usecase.DashboardUseCase
}

var (
	authHandler      *AuthHandler
	userHandler      *UserHandler
	productHandler   *ProductHandler
	categoryHandler  *CategoryHandler
	reviewHandler    *ReviewHandler
	cartHandler      *CartHandler
	wishlistHandler  *WishlistHandler
	orderHandler     *OrderHandler
	paymentHandler   *PaymentHandler
	fileHandler      *FileHandler
	dashboardHandler *DashboardHandler
)

func Setup(uc UseCases) {
	authHandler = NewAuthHandler(uc.Auth)
	userHandler = NewUserHandler(uc.User)
	productHandler = NewProductHandler(uc.Product)
	categoryHandler = NewCategoryHandler(uc.Category)
	reviewHandler = NewReviewHandler(uc.Review)
	cartHandler = NewCartHandler(uc.Cart)
	wishlistHandler = NewWishlistHandler(uc.Wishlist)
	orderHandler = NewOrderHandler(uc.Order)
	paymentHandler = NewPaymentHandler(uc.Payment)
	fileHandler = NewFileHandler(uc.Upload)
	dashboardHandler = NewDashboardHandler(uc.Dashboard, uc.Category)
}

func GetAuthHandler() *AuthHandler {
	return authHandler
}

func GetUserHandler() *UserHandler {
	return userHandler
}

func GetProductHandler() *ProductHandler {
	return productHandler
}

func GetCategoryHandler() *CategoryHandler {
	return categoryHandler
}

func GetReviewHandler() *ReviewHandler {
	return reviewHandler
}

func GetCartHandler() *CartHandler {
	return cartHandler
}

func GetWishlistHandler() *WishlistHandler {
	return wishlistHandler
}

func GetOrderHandler() *OrderHandler {
	return orderHandler
}

func GetPaymentHandler() *PaymentHandler {
	return paymentHandler
}

func GetFileHandler() *FileHandler {
	return fileHandler
}

func GetDashboardHandler() *DashboardHandler {
	return dashboardHandler
}

// bindAndValidate is the Bind then Validate pair every write handler starts with.
func bindAndValidate(c echo.Context, req interface{}) error {
	if err := c.Bind(req); err != nil {
		return err
	}
	return c.Validate(req)
}
