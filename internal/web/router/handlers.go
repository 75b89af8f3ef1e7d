package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/princeprakhar/dealership-reviews/internal/models"
	"github.com/princeprakhar/dealership-reviews/internal/web/session"
	"github.com/princeprakhar/dealership-reviews/internal/web/views"
)

// page is what every template renders from.
type page struct {
	Title    string
	User     session.User
	LoggedIn bool
	Notice   string
	View     interface{}
	Rows     []views.DealerRow
	Draft    views.ReviewDraft
}

func (h *Handler) render(c *gin.Context, code int, name string, store session.Store, p page) {
	p.User, p.LoggedIn = store.Current()
	c.HTML(code, name, p)
}

func navigate(c *gin.Context, nav views.Navigation) {
	code := http.StatusFound
	if c.Request.Method == http.MethodPost {
		code = http.StatusSeeOther
	}
	c.Redirect(code, nav.Path)
}

func (h *Handler) Home(c *gin.Context) {
	navigate(c, views.Home())
}

func (h *Handler) LoginPage(c *gin.Context) {
	store := h.sessions.For(c)
	h.render(c, http.StatusOK, "login.html", store, page{Title: "Login", View: views.NewLogin(h.api, store)})
}

func (h *Handler) Login(c *gin.Context) {
	store := h.sessions.For(c)
	view := views.NewLogin(h.api, store)

	if nav, ok := view.Submit(c.Request.Context(), c.PostForm("username"), c.PostForm("password")); ok {
		navigate(c, nav)
		return
	}
	h.render(c, http.StatusOK, "login.html", store, page{Title: "Login", Notice: view.Notice, View: view})
}

func (h *Handler) RegisterPage(c *gin.Context) {
	store := h.sessions.For(c)
	h.render(c, http.StatusOK, "register.html", store, page{Title: "Register", View: views.NewRegister(h.api, store)})
}

func (h *Handler) Register(c *gin.Context) {
	store := h.sessions.For(c)
	view := views.NewRegister(h.api, store)

	form := views.RegisterForm{
		UserName:        c.PostForm("username"),
		Password:        c.PostForm("password"),
		ConfirmPassword: c.PostForm("confirm_password"),
		Email:           c.PostForm("email"),
		FirstName:       c.PostForm("first_name"),
		LastName:        c.PostForm("last_name"),
	}
	if nav, ok := view.Submit(c.Request.Context(), form); ok {
		navigate(c, nav)
		return
	}
	h.render(c, http.StatusOK, "register.html", store, page{Title: "Register", Notice: view.Notice, View: view})
}

func (h *Handler) Logout(c *gin.Context) {
	store := h.sessions.For(c)
	view := views.NewLogout(h.api, store)

	if nav, ok := view.Submit(c.Request.Context()); ok {
		navigate(c, nav)
		return
	}
	h.render(c, http.StatusOK, "notice.html", store, page{Title: "Logout", Notice: view.Notice})
}

func (h *Handler) Dealers(c *gin.Context) {
	store := h.sessions.For(c)
	view := views.NewDealerList(h.api, store)

	view.Load(c.Request.Context())
	if state := c.Query("state"); state != "" {
		view.FilterByState(c.Request.Context(), state)
	}
	h.render(c, http.StatusOK, "dealers.html", store, page{Title: "Dealers", View: view, Rows: view.Rows()})
}

func (h *Handler) Dealer(c *gin.Context) {
	store := h.sessions.For(c)
	view := views.NewDealerDetail(h.api, store)

	view.Load(c.Request.Context(), c.Param("id"))
	h.render(c, http.StatusOK, "dealer.html", store, page{Title: "Dealer", View: view.Snapshot()})
}

func (h *Handler) PostReviewPage(c *gin.Context) {
	store := h.sessions.For(c)
	view := views.NewPostReview(h.api, store, c.Param("id"))

	view.Load(c.Request.Context())
	h.render(c, http.StatusOK, "postreview.html", store, page{Title: "Post Review", View: view})
}

func (h *Handler) PostReview(c *gin.Context) {
	store := h.sessions.For(c)
	view := views.NewPostReview(h.api, store, c.Param("id"))
	restoreReviewForm(c, view)

	draft := views.ReviewDraft{
		Review:       c.PostForm("review"),
		Choice:       c.PostForm("cars"),
		PurchaseDate: c.PostForm("purchase_date"),
		Year:         c.PostForm("year"),
	}
	if nav, ok := view.Submit(c.Request.Context(), draft); ok {
		navigate(c, nav)
		return
	}
	h.render(c, http.StatusOK, "postreview.html", store, page{Title: "Post Review", Notice: view.Notice, View: view, Draft: draft})
}

// restoreReviewForm takes the dealer name and car catalog the form page was
// rendered with, so a submit re-renders without fetching them again.
func restoreReviewForm(c *gin.Context, view *views.PostReview) {
	if name := c.PostForm("dealer_name"); name != "" {
		view.Dealer = &models.Dealer{FullName: name}
	}
	makes, carModels := c.PostFormArray("catalog_make"), c.PostFormArray("catalog_model")
	view.Choices = make([]models.CarChoice, 0, len(makes))
	for i := range makes {
		if i >= len(carModels) {
			break
		}
		view.Choices = append(view.Choices, models.CarChoice{CarMake: makes[i], CarModel: carModels[i]})
	}
}

func (h *Handler) NotFound(c *gin.Context) {
	h.render(c, http.StatusNotFound, "notice.html", h.sessions.For(c), page{Title: "Page not found"})
}
