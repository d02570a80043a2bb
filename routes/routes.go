package routes

import (
	"github.com/LiamF-2261667/fruckr-sub000/configs"
	"github.com/LiamF-2261667/fruckr-sub000/controllers"
	"github.com/LiamF-2261667/fruckr-sub000/middlewares"
	"github.com/LiamF-2261667/fruckr-sub000/pkg/mailer"
	"github.com/LiamF-2261667/fruckr-sub000/repository"
	"github.com/LiamF-2261667/fruckr-sub000/services"
	"github.com/LiamF-2261667/fruckr-sub000/ws"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes wires repositories, services and controllers onto the
// engine and returns the chat hub so the caller can run it.
func RegisterRoutes(r *gin.Engine, cfg *configs.Config, mail mailer.Mailer) *ws.ChatHub {
	r.Use(middlewares.CORSMiddleware())
	r.Use(middlewares.RequestLogger())
	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })

	db := configs.DB()

	// Repositories
	userRepo := repository.NewUserRepository(db)
	addrRepo := repository.NewAddressRepository(db)
	truckRepo := repository.NewFoodtruckRepository(db)
	foodRepo := repository.NewFoodItemRepository(db)
	cartRepo := repository.NewCartRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	reviewRepo := repository.NewReviewRepository(db)
	chatRepo := repository.NewChatRepository(db)
	invRepo := repository.NewInvitationRepository(db)

	// Services
	authSvc := services.NewAuthService(userRepo, cfg.JWTSecret, cfg.JWTTTL)
	addrSvc := services.NewAddressService(addrRepo)
	truckSvc := services.NewFoodtruckService(db, truckRepo, addrSvc)
	foodSvc := services.NewFoodItemService(db, foodRepo, truckRepo)
	cartSvc := services.NewCartService(db, cartRepo, foodRepo)
	orderSvc := services.NewOrderService(db, orderRepo, cartRepo, truckRepo, userRepo, mail)
	reviewSvc := services.NewReviewService(reviewRepo, truckRepo, foodRepo)
	searchSvc := services.NewSearchService(truckRepo)
	chatSvc := services.NewChatService(chatRepo, truckRepo)
	invSvc := services.NewInvitationService(db, invRepo, truckRepo, userRepo, mail, cfg.BaseURL)

	// Controllers
	authCtrl := controllers.NewAuthController(authSvc)
	truckCtrl := controllers.NewFoodtruckController(truckSvc)
	foodCtrl := controllers.NewFoodItemController(foodSvc)
	cartCtrl := controllers.NewCartController(cartSvc)
	orderCtrl := controllers.NewOrderController(orderSvc, addrSvc)
	staffOrderCtrl := controllers.NewStaffOrderController(orderSvc)
	reviewCtrl := controllers.NewReviewController(reviewSvc)
	searchCtrl := controllers.NewSearchController(searchSvc)
	chatCtrl := controllers.NewChatController(chatSvc)
	invCtrl := controllers.NewInvitationController(invSvc)

	hub := ws.NewChatHub(chatSvc)

	// Auth (public)
	a := r.Group("/auth")
	{
		a.POST("/register", authCtrl.Register)
		a.POST("/login", authCtrl.Login)
	}

	// Auth (protected)
	aAuth := a.Group("", middlewares.AuthMiddleware(cfg.JWTSecret))
	{
		aAuth.GET("/me", authCtrl.Me)
		aAuth.PATCH("/me", authCtrl.UpdateMe)
	}
	r.GET("/users/:id/avatar", authCtrl.Avatar)

	// Public browsing
	r.GET("/foodtrucks", truckCtrl.List)
	r.GET("/foodtrucks/:id", truckCtrl.Detail)
	r.GET("/foodtrucks/:id/banner", truckCtrl.Banner)
	r.GET("/foodtrucks/:id/items", foodCtrl.List)
	r.GET("/foodtrucks/:id/items/:name", foodCtrl.Detail)
	r.GET("/foodtrucks/:id/items/:name/image", foodCtrl.Image)
	r.GET("/foodtrucks/:id/reviews", reviewCtrl.List)
	r.GET("/search", searchCtrl.Search)

	// Cart (user)
	cart := r.Group("/cart", middlewares.AuthMiddleware(cfg.JWTSecret))
	{
		cart.GET("", cartCtrl.Get)
		cart.POST("/add", cartCtrl.Add)
		cart.POST("/update", cartCtrl.UpdateAmount)
		cart.POST("/remove", cartCtrl.Remove)
		cart.DELETE("", cartCtrl.Clear)
	}

	// Orders (user)
	u := r.Group("/", middlewares.AuthMiddleware(cfg.JWTSecret))
	{
		u.POST("/order/post", orderCtrl.Place)
		u.GET("/orders/:id", orderCtrl.Detail)
		u.POST("/foodtrucks/:id/reviews", reviewCtrl.Create)
	}

	// Profile
	profile := r.Group("/profile", middlewares.AuthMiddleware(cfg.JWTSecret))
	{
		profile.GET("/orders", orderCtrl.ListForMe)
		profile.GET("/invitations", invCtrl.ListMine)
	}

	// Owner / staff
	owner := r.Group("/", middlewares.AuthMiddleware(cfg.JWTSecret))
	{
		owner.POST("/foodtrucks", truckCtrl.Create)
		owner.PATCH("/foodtrucks/:id", truckCtrl.Update)
		owner.GET("/foodtrucks/:id/workers", truckCtrl.Workers)
		owner.PUT("/foodtrucks/:id/opentimes", truckCtrl.SetOpenTimes)
		owner.POST("/foodtrucks/:id/locations", truckCtrl.AddFutureLocation)
		owner.DELETE("/foodtrucks/:id/locations/:locId", truckCtrl.RemoveFutureLocation)

		owner.POST("/foodtrucks/:id/items", foodCtrl.Create)
		owner.PATCH("/foodtrucks/:id/items/:name", foodCtrl.Update)
		owner.POST("/foodtrucks/:id/items/:name/rename", foodCtrl.Rename)
		owner.DELETE("/foodtrucks/:id/items/:name", foodCtrl.Delete)
		owner.POST("/foodtrucks/:id/items/:name/media", foodCtrl.AddMedia)
		owner.DELETE("/foodtrucks/:id/items/:name/media/:mediaId", foodCtrl.RemoveMedia)

		owner.POST("/foodtrucks/:id/invitations", invCtrl.Invite)
	}

	// Staff order handling
	staff := r.Group("/foodtruck", middlewares.AuthMiddleware(cfg.JWTSecret))
	{
		staff.GET("/orders", staffOrderCtrl.List)
		staff.POST("/orders/ready", staffOrderCtrl.Ready)
		staff.POST("/orders/received", staffOrderCtrl.Received)
		staff.GET("/chats", chatCtrl.ListForTruck)
	}

	// Invitations (link targets from the mail)
	inv := r.Group("/invitations", middlewares.AuthMiddleware(cfg.JWTSecret))
	{
		inv.GET("/accept", invCtrl.Accept)
		inv.GET("/decline", invCtrl.Decline)
	}

	// Chat
	chats := r.Group("/chats", middlewares.AuthMiddleware(cfg.JWTSecret))
	{
		chats.GET("", chatCtrl.ListMine)
		chats.POST("/open", chatCtrl.Open)
		chats.GET("/:id/messages", chatCtrl.Messages)
		chats.POST("/:id/messages", chatCtrl.Send)
	}
	r.GET("/ws/chat/:roomId", middlewares.WSAuthMiddleware(cfg.JWTSecret), hub.HandleWebSocket)

	return hub
}
