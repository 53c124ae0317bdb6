package router

import (
	"errors"
	"net/http"

	"github.com/DjordjeVuckovic/article-feed/internal/apperr"
	"github.com/DjordjeVuckovic/article-feed/internal/dto"
	"github.com/DjordjeVuckovic/article-feed/internal/storage"
	"github.com/DjordjeVuckovic/article-feed/pkg/jsonapi"
	"github.com/DjordjeVuckovic/article-feed/pkg/pagination"
	"github.com/labstack/echo/v4"
)

type ArticleRouterOption func(*ArticleRouter)

// WithCalculator replaces the default page size policy
func WithCalculator(calc *pagination.Calculator) ArticleRouterOption {
	return func(r *ArticleRouter) {
		r.calc = calc
	}
}

// WithBaseURL makes links use origin instead of the request scheme and host
func WithBaseURL(origin string) ArticleRouterOption {
	return func(r *ArticleRouter) {
		r.origin = origin
	}
}

type ArticleRouter struct {
	e        *echo.Echo
	articles storage.ArticleCollection
	calc     *pagination.Calculator
	origin   string
}

func NewArticleRouter(e *echo.Echo, articles storage.ArticleCollection, opts ...ArticleRouterOption) *ArticleRouter {
	r := &ArticleRouter{
		e:        e,
		articles: articles,
		calc:     pagination.NewCalculator(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

func (r *ArticleRouter) Bind() {
	r.e.GET("/articles", r.listArticles)
}

// listArticles godoc
// @Summary List articles
// @Description Returns one page of articles, newest first, as a JSON:API document with pagination meta and links
// @Tags articles
// @Produce application/vnd.api+json
// @Param page[number] query int false "1-based page index" default(1)
// @Param page[size] query int false "Items per page" default(20)
// @Success 200 {object} jsonapi.Document
// @Failure 400 {object} jsonapi.ErrorDocument
// @Failure 500 {object} jsonapi.ErrorDocument
// @Router /articles [get]
func (r *ArticleRouter) listArticles(c echo.Context) error {
	req := pagination.RequestFromQuery(c.QueryParams())
	if r.origin == "" && c.Request().Host == "" {
		return apperr.NewValidation("request host is required to build pagination links")
	}

	page, err := pagination.Paginate(c.Request().Context(), r.calc, r.articles, req, r.requestURL(c))
	if errors.Is(err, pagination.ErrMalformedURL) {
		return apperr.NewValidationWrap("request URL cannot be used for pagination links", err)
	}
	if err != nil {
		return err
	}

	doc := jsonapi.SerializePage(&pagination.Page[dto.ArticleResource]{
		Items:    dto.NewArticleResources(page.Items),
		Metadata: page.Metadata,
		Links:    page.Links,
	})

	c.Response().Header().Set("Link", page.Links.Header())
	c.Response().Header().Set(echo.HeaderContentType, jsonapi.MediaType)
	return c.JSON(http.StatusOK, doc)
}

// requestURL rebuilds the absolute URL the client used
func (r *ArticleRouter) requestURL(c echo.Context) string {
	req := c.Request()
	origin := r.origin
	if origin == "" {
		origin = c.Scheme() + "://" + req.Host
	}
	return origin + req.URL.RequestURI()
}
