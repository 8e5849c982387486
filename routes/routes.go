package routes

import (
	"github.com/MINJiwonJiwon/capstone-snapncook/controllers"
	"github.com/MINJiwonJiwon/capstone-snapncook/middlewares"
	"github.com/MINJiwonJiwon/capstone-snapncook/services"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"gorm.io/gorm"
)

func SetupRouter(db *gorm.DB, logger zerolog.Logger) *gin.Engine {
	r := gin.Default()

	authSvc := services.NewAuthService(db)
	oauthSvc := services.NewOAuthService(db, logger)
	userSvc := services.NewUserService(db)
	matchingSvc := services.NewMatchingService(db)
	recommendSvc := services.NewRecommendService(db)
	rankingSvc := services.NewRankingService(db, logger)
	classifierSvc := services.NewClassifierService(db, logger)

	authCtl := controllers.NewAuthController(authSvc)
	oauthCtl := controllers.NewOAuthController(oauthSvc, authSvc)
	userCtl := controllers.NewUserController(userSvc)
	inputCtl := controllers.NewIngredientInputController(matchingSvc, recommendSvc)
	recommendCtl := controllers.NewRecommendController(recommendSvc)
	detectionCtl := controllers.NewDetectionController(db, classifierSvc)
	foodCtl := controllers.NewFoodController(db)
	recipeCtl := controllers.NewRecipeController(db)
	reviewCtl := controllers.NewReviewController(db)
	bookmarkCtl := controllers.NewBookmarkController(db)
	userLogCtl := controllers.NewUserLogController(db)
	homeCtl := controllers.NewHomeController(db, rankingSvc)
	mypageCtl := controllers.NewMypageController(db)
	adminCtl := controllers.NewAdminController(db)

	requireAuth := middlewares.AuthMiddleware(db)

	api := r.Group("/api")
	{
		auth := api.Group("/auth")
		{
			auth.POST("/signup", authCtl.Signup)
			auth.POST("/login", authCtl.Login)
			auth.POST("/refresh", authCtl.Refresh)
			auth.POST("/logout", authCtl.Logout)
			auth.GET("/me", requireAuth, authCtl.Me)
		}

		oauth := api.Group("/oauth")
		{
			oauth.GET("/:provider/login", oauthCtl.Login)
			oauth.GET("/:provider/callback", oauthCtl.Callback)
		}

		api.GET("/foods", foodCtl.List)
		api.GET("/foods/:id", foodCtl.Get)
		api.GET("/recipes/:id", recipeCtl.Get)
		api.GET("/foods/:id/reviews", reviewCtl.ListForFood)

		recommend := api.Group("/recommend/recipes")
		{
			recommend.GET("/food/:foodID", recommendCtl.ByFood)
			recommend.GET("/by-detection/:id", recommendCtl.ByDetection)
			recommend.GET("/by-ingredient/:id", recommendCtl.ByIngredientInput)

			mine := recommend.Group("/me", requireAuth)
			{
				mine.GET("/by-detection/:id", recommendCtl.MyByDetection)
				mine.GET("/by-ingredient/:id", recommendCtl.MyByIngredientInput)
				mine.GET("/strict/:id", recommendCtl.MyStrict)
			}
		}

		api.GET("/popular-searches", homeCtl.PopularSearches)
		api.POST("/search-logs", homeCtl.LogSearch)
		api.GET("/recommended-food", homeCtl.RecommendedFood)

		authed := api.Group("", requireAuth)
		{
			authed.POST("/user-ingredient-inputs", inputCtl.Create)
			authed.GET("/user-ingredient-inputs/:id", inputCtl.Get)
			authed.GET("/user-ingredient-inputs/:id/recipes", inputCtl.Mappings)

			authed.POST("/detection-results", detectionCtl.Create)
			authed.POST("/detection-results/upload", detectionCtl.Upload)
			authed.GET("/detection-results/me", detectionCtl.ListMine)

			authed.POST("/reviews", reviewCtl.Create)
			authed.GET("/reviews/me", reviewCtl.ListMine)

			authed.POST("/bookmarks", bookmarkCtl.Create)
			authed.DELETE("/bookmarks/:id", bookmarkCtl.Delete)
			authed.GET("/bookmarks/me", bookmarkCtl.ListMine)

			authed.POST("/user-logs", userLogCtl.Create)
			authed.GET("/user-logs/me", userLogCtl.ListMine)

			authed.GET("/mypage/summary", mypageCtl.Summary)

			authed.PUT("/users/me", userCtl.UpdateProfile)
			authed.DELETE("/users/me", userCtl.DeleteAccount)
			authed.DELETE("/users/me/social/:provider", userCtl.UnlinkSocial)
		}

		admin := api.Group("/admin", requireAuth, middlewares.AdminMiddleware())
		{
			admin.POST("/foods", foodCtl.Create)
			admin.POST("/recipes", recipeCtl.Create)
			admin.POST("/recipe-steps", recipeCtl.CreateStep)
			admin.GET("/users", adminCtl.ListUsers)
			admin.GET("/reviews", adminCtl.ListReviews)
			admin.GET("/stats", adminCtl.Stats)
		}
	}

	return r
}
