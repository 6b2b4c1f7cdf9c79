package controllers

import (
	"errors"
	"log"
	"net/http"
	"os"
	"strings"

	"Postboard/api/auth"
	"Postboard/api/mailer"
	"Postboard/api/models"
	"Postboard/api/security"
	"Postboard/api/utils/formaterror"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const sessionMaxAge = 7 * 24 * 60 * 60

// Stubbed in tests so password resets do not hit SendGrid.
var sendResetMail = mailer.SendResetPassword

func (server *Server) SignupForm(c *gin.Context) {
	server.render(c, http.StatusOK, "signup.html", gin.H{})
}

func (server *Server) Signup(c *gin.Context) {
	user := models.User{
		Username: c.PostForm("username"),
		Email:    c.PostForm("email"),
		Password: c.PostForm("password"),
	}
	user.Prepare()

	renderForm := func(errs map[string]string) {
		server.render(c, http.StatusOK, "signup.html", gin.H{
			"errors":   errs,
			"username": user.Username,
			"email":    user.Email,
		})
	}

	if errs := user.Validate(""); len(errs) > 0 {
		renderForm(errs)
		return
	}
	if _, err := user.SaveUser(server.DB); err != nil {
		renderForm(formaterror.FormatError(err.Error()))
		return
	}
	c.Redirect(http.StatusFound, "/auth/login/")
}

func (server *Server) LoginForm(c *gin.Context) {
	server.render(c, http.StatusOK, "login.html", gin.H{
		"next": c.Query("next"),
	})
}

func (server *Server) Login(c *gin.Context) {
	user := models.User{
		Email:    c.PostForm("email"),
		Password: c.PostForm("password"),
	}
	user.Prepare()
	next := c.PostForm("next")

	renderForm := func(errs map[string]string) {
		server.render(c, http.StatusOK, "login.html", gin.H{
			"errors": errs,
			"email":  user.Email,
			"next":   next,
		})
	}

	if errs := user.Validate("login"); len(errs) > 0 {
		renderForm(errs)
		return
	}

	found, err := server.users.ByEmail(user.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			renderForm(map[string]string{"Incorrect_details": "Incorrect Details"})
			return
		}
		server.serverError(c, err)
		return
	}
	if err := security.VerifyPassword(found.Password, user.Password); err != nil {
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			renderForm(map[string]string{"Incorrect_password": "Incorrect Password"})
			return
		}
		server.serverError(c, err)
		return
	}

	token, err := auth.CreateToken(found.ID)
	if err != nil {
		server.serverError(c, err)
		return
	}
	secure := strings.EqualFold(os.Getenv("APP_ENV"), "production")
	c.SetCookie(auth.SessionCookie, token, sessionMaxAge, "/", "", secure, true)

	c.Redirect(http.StatusFound, safeNext(next))
}

func (server *Server) Logout(c *gin.Context) {
	secure := strings.EqualFold(os.Getenv("APP_ENV"), "production")
	c.SetCookie(auth.SessionCookie, "", -1, "/", "", secure, true)
	c.Redirect(http.StatusFound, "/")
}

func (server *Server) ForgotPasswordForm(c *gin.Context) {
	server.render(c, http.StatusOK, "password_reset.html", gin.H{})
}

// ForgotPassword always reports success so addresses cannot be enumerated.
func (server *Server) ForgotPassword(c *gin.Context) {
	user := models.User{Email: c.PostForm("email")}
	user.Prepare()

	if errs := user.Validate("forgotpassword"); len(errs) > 0 {
		server.render(c, http.StatusOK, "password_reset.html", gin.H{"errors": errs})
		return
	}

	found, err := server.users.ByEmail(user.Email)
	if err == nil {
		resetPassword := models.ResetPassword{Email: found.Email}
		resetPassword.Prepare()
		if _, err := resetPassword.SaveDetails(server.DB); err != nil {
			server.serverError(c, err)
			return
		}

		resetLink := strings.TrimSuffix(appURL(), "/") + "/auth/password_reset/confirm/?token=" + resetPassword.Token
		if err := sendResetMail(found.Email, found.Username, resetLink); err != nil {
			log.Printf("password reset mail to %s: %v", found.Email, err)
		}
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		server.serverError(c, err)
		return
	}

	server.render(c, http.StatusOK, "password_reset.html", gin.H{"sent": true})
}

func (server *Server) ResetPasswordForm(c *gin.Context) {
	server.render(c, http.StatusOK, "password_reset_confirm.html", gin.H{
		"token": c.Query("token"),
	})
}

func (server *Server) ResetPassword(c *gin.Context) {
	token := c.PostForm("token")

	var resetPassword models.ResetPassword
	if err := server.DB.Where("token = ?", token).Take(&resetPassword).Error; err != nil {
		server.renderNotFound(c)
		return
	}

	password := c.PostForm("password")
	if len(password) < 6 {
		server.render(c, http.StatusOK, "password_reset_confirm.html", gin.H{
			"errors": map[string]string{"Invalid_password": "Password should be at least 6 characters"},
			"token":  token,
		})
		return
	}

	user := models.User{Email: resetPassword.Email, Password: password}
	if err := user.UpdatePassword(server.DB); err != nil {
		server.serverError(c, err)
		return
	}
	if _, err := resetPassword.DeleteDetails(server.DB); err != nil {
		log.Printf("delete reset token: %v", err)
	}
	c.Redirect(http.StatusFound, "/auth/login/")
}

// safeNext only honors relative redirect targets.
func safeNext(next string) string {
	if strings.HasPrefix(next, "/") && !strings.HasPrefix(next, "//") {
		return next
	}
	return "/"
}

func appURL() string {
	if u := os.Getenv("APP_URL"); u != "" {
		return u
	}
	return "http://localhost:8888"
}
