package main

import (
	"fmt"
	"log"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/xiebiao/bookshop/docs"
	appauthor "github.com/xiebiao/bookshop/internal/application/author"
	appbook "github.com/xiebiao/bookshop/internal/application/book"
	apporder "github.com/xiebiao/bookshop/internal/application/order"
	appsearch "github.com/xiebiao/bookshop/internal/application/search"
	appuser "github.com/xiebiao/bookshop/internal/application/user"
	"github.com/xiebiao/bookshop/internal/domain/user"
	"github.com/xiebiao/bookshop/internal/infrastructure/config"
	"github.com/xiebiao/bookshop/internal/infrastructure/persistence/mysql"
	"github.com/xiebiao/bookshop/internal/infrastructure/persistence/redis"
	"github.com/xiebiao/bookshop/internal/interface/http/handler"
	"github.com/xiebiao/bookshop/internal/interface/http/middleware"
	"github.com/xiebiao/bookshop/pkg/jwt"
	"github.com/xiebiao/bookshop/pkg/metrics"
	"github.com/xiebiao/bookshop/pkg/response"
)

// main 主程序入口
// 说明：手动依赖注入；cmd/api/wire.go提供等价的Wire版本
//
// @title                      书城API
// @version                    1.0
// @description                图书目录与订单服务API文档
// @host                       localhost:8080
// @BasePath                   /
// @securityDefinitions.apikey BearerAuth
// @in                         header
// @name                       Authorization
func main() {
	// 1. 加载配置
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("加载配置失败: %v", err)
	}

	fmt.Printf("✓ 配置加载成功\n")
	fmt.Printf("  - 服务端口: %d\n", cfg.Server.Port)
	fmt.Printf("  - 运行模式: %s\n", cfg.Server.Mode)
	fmt.Printf("  - 数据库: %s:%d/%s\n", cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)
	fmt.Printf("  - Redis: %s\n", cfg.Redis.Addr())

	// 2. 初始化数据库连接
	db, err := mysql.NewDB(cfg)
	if err != nil {
		log.Fatalf("初始化数据库失败: %v", err)
	}

	// 3. 初始化Redis连接
	redisClient, err := redis.NewClient(cfg)
	if err != nil {
		log.Fatalf("初始化Redis失败: %v", err)
	}

	// 4. 依赖注入（手动组装）
	// Repository ← Service ← UseCase ← Handler

	// 基础设施层
	userRepo := mysql.NewUserRepository(db)
	bookRepo := mysql.NewBookRepository(db)
	authorRepo := mysql.NewAuthorRepository(db)
	orderRepo := mysql.NewOrderRepository(db)
	txManager := mysql.NewTxManager(db)
	sessionStore := redis.NewSessionStore(redisClient)
	jwtManager := jwt.NewManager(
		cfg.JWT.Secret,
		cfg.JWT.AccessTokenExpire,
		cfg.JWT.RefreshTokenExpire,
	)

	// 领域层
	userService := user.NewService(userRepo)

	// 应用层
	registerUseCase := appuser.NewRegisterUseCase(userService)
	loginUseCase := appuser.NewLoginUseCase(userService, jwtManager, sessionStore)
	logoutUseCase := appuser.NewLogoutUseCase(sessionStore)

	publishBookUseCase := appbook.NewPublishBookUseCase(bookRepo)
	listBooksUseCase := appbook.NewListBooksUseCase(bookRepo)
	getBookUseCase := appbook.NewGetBookUseCase(bookRepo)
	updateBookUseCase := appbook.NewUpdateBookUseCase(bookRepo)
	deleteBookUseCase := appbook.NewDeleteBookUseCase(bookRepo)

	createAuthorUseCase := appauthor.NewCreateAuthorUseCase(authorRepo)
	listAuthorsUseCase := appauthor.NewListAuthorsUseCase(authorRepo)
	getAuthorUseCase := appauthor.NewGetAuthorUseCase(authorRepo)
	updateAuthorUseCase := appauthor.NewUpdateAuthorUseCase(authorRepo)
	deleteAuthorUseCase := appauthor.NewDeleteAuthorUseCase(authorRepo)

	createOrderUseCase := apporder.NewCreateOrderUseCase(orderRepo, bookRepo, txManager)
	getOrderUseCase := apporder.NewGetOrderUseCase(orderRepo)
	listOrdersUseCase := apporder.NewListOrdersUseCase(orderRepo)
	updateOrderStatusUseCase := apporder.NewUpdateOrderStatusUseCase(orderRepo)

	searchCatalogUseCase := appsearch.NewSearchCatalogUseCase(bookRepo, authorRepo)

	// 接口层
	userHandler := handler.NewUserHandler(registerUseCase, loginUseCase, logoutUseCase, jwtManager)
	bookHandler := handler.NewBookHandler(publishBookUseCase, listBooksUseCase, getBookUseCase, updateBookUseCase, deleteBookUseCase)
	authorHandler := handler.NewAuthorHandler(createAuthorUseCase, listAuthorsUseCase, getAuthorUseCase, updateAuthorUseCase, deleteAuthorUseCase)
	orderHandler := handler.NewOrderHandler(createOrderUseCase, getOrderUseCase, listOrdersUseCase, updateOrderStatusUseCase)
	searchHandler := handler.NewSearchHandler(searchCatalogUseCase)
	authMiddleware := middleware.NewAuthMiddleware(jwtManager, sessionStore)

	// 5. 初始化Gin引擎
	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.Default()

	// 6. 注册路由
	registerRoutes(r, userHandler, bookHandler, authorHandler, orderHandler, searchHandler, authMiddleware)

	// 7. 启动服务
	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	fmt.Printf("\n🚀 服务启动成功！\n")
	fmt.Printf("   访问地址: http://localhost%s\n", addr)
	fmt.Printf("   健康检查: http://localhost%s/ping\n", addr)
	fmt.Printf("   API文档: http://localhost%s/swagger/index.html\n", addr)
	fmt.Printf("   监控指标: http://localhost%s/metrics\n", addr)
	fmt.Printf("\n按Ctrl+C停止服务\n\n")

	if err := r.Run(addr); err != nil {
		log.Fatalf("启动服务失败: %v", err)
	}
}

// registerRoutes 注册路由
// 权限说明：
// - 目录读取（图书/作者列表与详情、检索）对所有人开放
// - 目录写入走OptionalAuth，由权限表区分未登录(401)与非管理员(403)
// - 订单全部需要登录；PUT /orders/:id结构上不允许，固定返回405
func registerRoutes(
	r *gin.Engine,
	userHandler *handler.UserHandler,
	bookHandler *handler.BookHandler,
	authorHandler *handler.AuthorHandler,
	orderHandler *handler.OrderHandler,
	searchHandler *handler.SearchHandler,
	authMiddleware *middleware.AuthMiddleware,
) {
	r.Use(middleware.RequestID())
	r.Use(middleware.Metrics())

	// 健康检查
	r.GET("/ping", func(c *gin.Context) {
		response.Success(c, gin.H{
			"message": "pong",
			"status":  "healthy",
		})
	})

	// Prometheus指标
	r.GET("/metrics", gin.WrapH(metrics.Handler()))

	// Swagger文档
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// API路由组
	v1 := r.Group("/api/v1")
	{
		// 认证模块
		auth := v1.Group("/auth")
		{
			auth.POST("/register", userHandler.Register)
			auth.POST("/login", userHandler.Login)
			auth.POST("/refresh", userHandler.RefreshToken)
			auth.POST("/logout", authMiddleware.RequireAuth(), userHandler.Logout)
		}

		// 图书模块
		books := v1.Group("/books")
		books.Use(authMiddleware.OptionalAuth())
		{
			books.GET("", bookHandler.ListBooks)
			books.GET("/:id", bookHandler.GetBook)
			books.POST("", bookHandler.PublishBook)
			books.PUT("/:id", bookHandler.UpdateBook)
			books.PATCH("/:id", bookHandler.PatchBook)
			books.DELETE("/:id", bookHandler.DeleteBook)
		}

		// 作者模块
		authors := v1.Group("/authors")
		authors.Use(authMiddleware.OptionalAuth())
		{
			authors.GET("", authorHandler.ListAuthors)
			authors.GET("/:id", authorHandler.GetAuthor)
			authors.POST("", authorHandler.CreateAuthor)
			authors.PUT("/:id", authorHandler.UpdateAuthor)
			authors.PATCH("/:id", authorHandler.PatchAuthor)
			authors.DELETE("/:id", authorHandler.DeleteAuthor)
		}

		// 目录检索
		v1.GET("/search", searchHandler.Search)

		// 当前登录用户信息
		v1.GET("/profile", authMiddleware.RequireAuth(), func(c *gin.Context) {
			response.Success(c, gin.H{
				"user_id":  middleware.GetUserID(c),
				"username": middleware.GetUsername(c),
				"email":    middleware.GetEmail(c),
				"is_staff": middleware.IsStaff(c),
			})
		})

		// 订单模块（全部需要登录）
		orders := v1.Group("/orders")
		orders.Use(authMiddleware.RequireAuth())
		{
			orders.POST("", orderHandler.CreateOrder)
			orders.GET("", orderHandler.ListOrders)
			orders.GET("/:id", orderHandler.GetOrder)
			orders.PUT("/:id", orderHandler.ReplaceOrder)
			// 状态是订单创建后唯一允许的变更,两条PATCH路径等价
			orders.PATCH("/:id", orderHandler.UpdateOrderStatus)
			orders.PATCH("/:id/status", orderHandler.UpdateOrderStatus)
		}
	}
}
