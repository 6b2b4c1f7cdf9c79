package controllers

import (
	"Postboard/api/middlewares"
)

func (s *Server) initializeRoutes() {
	s.Router.Use(middlewares.SessionMiddleware(s.DB))

	// Read pages
	s.Router.GET("/", s.Index)
	s.Router.GET("/group/:slug/", s.GroupPosts)
	s.Router.GET("/profile/:username/", s.Profile)
	s.Router.GET("/posts/:id/", s.PostDetail)

	// Write pages (session required)
	authRequired := middlewares.LoginRequired()
	s.Router.GET("/create/", authRequired, s.NewPost)
	s.Router.POST("/create/", authRequired, s.CreatePost)
	s.Router.GET("/posts/:id/edit/", authRequired, s.EditPostForm)
	s.Router.POST("/posts/:id/edit/", authRequired, s.EditPost)
	s.Router.POST("/posts/:id/delete/", authRequired, s.DeletePost)
	s.Router.POST("/posts/:id/comment/", authRequired, s.AddComment)
	s.Router.GET("/follow/", authRequired, s.FollowIndex)
	s.Router.POST("/profile/:username/follow/", authRequired, s.ProfileFollow)
	s.Router.POST("/profile/:username/unfollow/", authRequired, s.ProfileUnfollow)

	// Auth pages, rate limited harder than the rest of the site
	auth := s.Router.Group("/auth", middlewares.AuthRateLimitMiddleware())
	{
		auth.GET("/signup/", s.SignupForm)
		auth.POST("/signup/", s.Signup)
		auth.GET("/login/", s.LoginForm)
		auth.POST("/login/", s.Login)
		auth.GET("/logout/", s.Logout)
		auth.GET("/password_reset/", s.ForgotPasswordForm)
		auth.POST("/password_reset/", s.ForgotPassword)
		auth.GET("/password_reset/confirm/", s.ResetPasswordForm)
		auth.POST("/password_reset/confirm/", s.ResetPassword)
	}

	// Administrative / test-only hooks
	s.Router.POST("/internal/cache/clear", s.ClearIndexCache)

	s.Router.NoRoute(s.NotFound)
}
