package views

import (
	"context"

	"github.com/princeprakhar/dealership-reviews/internal/types"
	"github.com/princeprakhar/dealership-reviews/internal/web/session"
	"github.com/princeprakhar/dealership-reviews/pkg/logger"
	"github.com/sirupsen/logrus"
)

const (
	NoticeNotAuthenticated = "The user could not be authenticated."
	NoticeEmptyPassword    = "Password cannot be empty"
	NoticePasswordMismatch = "Password Mismatch"
	NoticeRegisterFailed   = "Registration failed. Please try again."
	NoticeLogoutFailed     = "There was a problem logging out. Please try again."
)

type Login struct {
	api      API
	session  session.Store
	UserName string
	Notice   string
}

func NewLogin(api API, store session.Store) *Login {
	return &Login{api: api, session: store}
}

func (v *Login) Submit(ctx context.Context, userName, password string) (Navigation, bool) {
	v.UserName = userName
	v.Notice = ""

	resp, err := v.api.Login(ctx, types.LoginRequest{UserName: userName, Password: password})
	if err != nil {
		logFetchFailure("login", "/login", err)
		v.Notice = NoticeNotAuthenticated
		return Navigation{}, false
	}
	if resp.Status != types.StatusAuthenticated {
		v.Notice = NoticeNotAuthenticated
		return Navigation{}, false
	}

	if !startSession(v.session, userName, resp) {
		v.Notice = NoticeNotAuthenticated
		return Navigation{}, false
	}
	return Navigation{Path: "/", FullReload: true}, true
}

// RegisterForm is the registration form as submitted.
type RegisterForm struct {
	UserName        string
	Password        string
	ConfirmPassword string
	Email           string
	FirstName       string
	LastName        string
}

// PasswordsMatch is the live mismatch indicator; two empty fields count as matching.
func PasswordsMatch(password, confirm string) bool {
	return password == confirm
}

type Register struct {
	api      API
	session  session.Store
	Form     RegisterForm
	Mismatch bool
	Notice   string
}

func NewRegister(api API, store session.Store) *Register {
	return &Register{api: api, session: store}
}

func (v *Register) Submit(ctx context.Context, form RegisterForm) (Navigation, bool) {
	v.Form = form
	v.Form.Password, v.Form.ConfirmPassword = "", ""
	v.Mismatch = !PasswordsMatch(form.Password, form.ConfirmPassword)
	v.Notice = ""

	if form.Password == "" || form.ConfirmPassword == "" {
		v.Notice = NoticeEmptyPassword
		return Navigation{}, false
	}
	if v.Mismatch {
		v.Notice = NoticePasswordMismatch
		return Navigation{}, false
	}

	resp, err := v.api.Register(ctx, types.RegisterRequest{
		UserName:  form.UserName,
		Password:  form.Password,
		FirstName: form.FirstName,
		LastName:  form.LastName,
		Email:     form.Email,
	})
	if err != nil {
		logFetchFailure("register", "/register/", err)
		v.Notice = NoticeRegisterFailed
		return Navigation{}, false
	}
	if resp.Status != types.StatusSuccess {
		v.Notice = resp.Error
		if v.Notice == "" {
			v.Notice = NoticeRegisterFailed
		}
		return Navigation{}, false
	}

	if !startSession(v.session, form.UserName, resp) {
		v.Notice = NoticeRegisterFailed
		return Navigation{}, false
	}
	return Navigation{Path: "/", FullReload: true}, true
}

type Logout struct {
	api     API
	session session.Store
	Notice  string
}

func NewLogout(api API, store session.Store) *Logout {
	return &Logout{api: api, session: store}
}

// Submit revokes the session's token on the backend and clears the session.
// On failure the session is kept.
func (v *Logout) Submit(ctx context.Context) (Navigation, bool) {
	user, _ := v.session.Current()

	resp, err := v.api.Logout(ctx, user.Token)
	if err != nil {
		logFetchFailure("logout", "/logout", err)
		v.Notice = NoticeLogoutFailed
		return Navigation{}, false
	}
	if resp.Status != types.StatusSuccess {
		v.Notice = NoticeLogoutFailed
		return Navigation{}, false
	}

	v.session.Logout()
	logger.WithFields(logrus.Fields{"username": user.Username}).Info("user logged out")
	return Navigation{Path: StaticHome, FullReload: true}, true
}

func startSession(store session.Store, fallbackName string, resp *types.AuthResponse) bool {
	name := resp.UserName
	if name == "" {
		name = fallbackName
	}
	err := store.Login(session.User{
		Username:  name,
		FirstName: resp.FirstName,
		LastName:  resp.LastName,
		Token:     resp.Token,
	})
	if err != nil {
		logger.WithFields(logrus.Fields{"username": name, "error": err}).Error("failed to store session")
		return false
	}
	return true
}
