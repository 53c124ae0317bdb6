package router

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/DjordjeVuckovic/article-feed/internal/apperr"
	"github.com/DjordjeVuckovic/article-feed/internal/domain"
	"github.com/DjordjeVuckovic/article-feed/internal/storage/in_mem"
	"github.com/DjordjeVuckovic/article-feed/pkg/jsonapi"
	"github.com/DjordjeVuckovic/article-feed/pkg/pagination"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type response struct {
	Data []struct {
		ID         string          `json:"id"`
		Type       string          `json:"type"`
		Attributes json.RawMessage `json:"attributes"`
	} `json:"data"`
	Meta  map[string]int64  `json:"meta"`
	Links map[string]string `json:"links"`
}

func newTestEcho(t *testing.T, n int, opts ...ArticleRouterOption) *echo.Echo {
	t.Helper()
	store := in_mem.NewInMemStorer()
	base := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

	articles := make([]domain.Article, n)
	for i := range articles {
		articles[i] = domain.Article{
			Title:     fmt.Sprintf("article-%02d", i),
			Content:   "content",
			CreatedAt: base.Add(time.Duration(i) * time.Hour),
		}
	}
	require.NoError(t, store.SaveBulk(context.Background(), articles))

	e := echo.New()
	e.HTTPErrorHandler = apperr.GlobalErrorHandler()
	NewArticleRouter(e, store, opts...).Bind()
	return e
}

func get(t *testing.T, e *echo.Echo, target string) (*httptest.ResponseRecorder, response) {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	var body response
	if rec.Code == http.StatusOK {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	}
	return rec, body
}

func linkPage(t *testing.T, link string) string {
	t.Helper()
	u, err := url.Parse(link)
	require.NoError(t, err)
	return u.Query().Get(pagination.PageNumberParam)
}

func TestListArticles_ScenarioA(t *testing.T) {
	e := newTestEcho(t, 3)

	rec, body := get(t, e, "/articles?page[number]=2&page[size]=1")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, jsonapi.MediaType, rec.Header().Get(echo.HeaderContentType))

	require.Len(t, body.Data, 1)
	assert.Equal(t, "articles", body.Data[0].Type)
	assert.Contains(t, string(body.Data[0].Attributes), `"title":"article-01"`)

	assert.Equal(t, map[string]int64{"total": 3, "pages": 3}, body.Meta)
	assert.Len(t, body.Links, 5)
	assert.Equal(t, "http://example.com/articles?page%5Bnumber%5D=2&page%5Bsize%5D=1", body.Links["self"])
	assert.Equal(t, "1", linkPage(t, body.Links["prev"]))
	assert.Equal(t, "3", linkPage(t, body.Links["next"]))
	assert.Equal(t, "1", linkPage(t, body.Links["first"]))
	assert.Equal(t, "3", linkPage(t, body.Links["last"]))
}

func TestListArticles_ScenarioB_Empty(t *testing.T) {
	e := newTestEcho(t, 0)

	rec, body := get(t, e, "/articles")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.NotNil(t, body.Data)
	assert.Empty(t, body.Data)
	assert.Equal(t, map[string]int64{"total": 0, "pages": 0}, body.Meta)
	assert.Equal(t, map[string]string{
		"self": "http://example.com/articles?page%5Bnumber%5D=1&page%5Bsize%5D=20",
	}, body.Links)
	assert.Contains(t, rec.Body.String(), `"data":[]`)
}

func TestListArticles_ScenarioC_SinglePage(t *testing.T) {
	e := newTestEcho(t, 5)

	_, body := get(t, e, "/articles?page[number]=1&page[size]=5")

	assert.Len(t, body.Data, 5)
	assert.NotContains(t, body.Links, "prev")
	assert.NotContains(t, body.Links, "next")
	assert.Equal(t, body.Links["self"], body.Links["first"])
	assert.Equal(t, body.Links["self"], body.Links["last"])
}

func TestListArticles_ScenarioD_MalformedParams(t *testing.T) {
	e := newTestEcho(t, 10)

	rec, body := get(t, e, "/articles?page[number]=abc")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, body.Data, 10)
	assert.Equal(t, map[string]int64{"total": 10, "pages": 1}, body.Meta)
	assert.Equal(t, "http://example.com/articles?page%5Bnumber%5D=1&page%5Bsize%5D=20", body.Links["self"])
}

func TestListArticles_PreservesOtherQueryParams(t *testing.T) {
	e := newTestEcho(t, 12)

	_, body := get(t, e, "/articles?foo=bar&page[number]=1&page[size]=5")

	require.Len(t, body.Links, 4)
	for rel, link := range body.Links {
		u, err := url.Parse(link)
		require.NoError(t, err)
		assert.Equal(t, "bar", u.Query().Get("foo"), rel)
	}
	assert.Equal(t, "http://example.com/articles?foo=bar&page%5Bnumber%5D=2&page%5Bsize%5D=5", body.Links["next"])
}

func TestListArticles_PageBeyondLast(t *testing.T) {
	e := newTestEcho(t, 4)

	rec, body := get(t, e, "/articles?page[number]=9&page[size]=2")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, body.Data)
	assert.Equal(t, "9", linkPage(t, body.Links["self"]))
	assert.Equal(t, "8", linkPage(t, body.Links["prev"]))
	assert.Equal(t, "2", linkPage(t, body.Links["last"]))
	assert.NotContains(t, body.Links, "next")
}

func TestListArticles_ClampsPageSize(t *testing.T) {
	e := newTestEcho(t, 10, WithCalculator(pagination.NewCalculator(pagination.WithMaxSize(3))))

	_, body := get(t, e, "/articles?page[size]=50")

	assert.Len(t, body.Data, 3)
	assert.Equal(t, int64(4), body.Meta["pages"])
}

func TestListArticles_BaseURLOverride(t *testing.T) {
	e := newTestEcho(t, 2, WithBaseURL("https://api.example.org/v1"))

	_, body := get(t, e, "/articles?page[size]=1")

	assert.Equal(t, "https://api.example.org/v1/articles?page%5Bsize%5D=1&page%5Bnumber%5D=1", body.Links["self"])
}

func TestListArticles_ForwardedProto(t *testing.T) {
	e := newTestEcho(t, 1)
	req := httptest.NewRequest(http.MethodGet, "/articles", nil)
	req.Header.Set(echo.HeaderXForwardedProto, "https")
	rec := httptest.NewRecorder()

	e.ServeHTTP(rec, req)

	var body response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "https://example.com/articles?page%5Bnumber%5D=1&page%5Bsize%5D=20", body.Links["self"])
}

func TestListArticles_LinkHeader(t *testing.T) {
	e := newTestEcho(t, 3)

	rec, body := get(t, e, "/articles?page[number]=2&page[size]=1")

	header := rec.Header().Get("Link")
	assert.Contains(t, header, fmt.Sprintf(`<%s>; rel="next"`, body.Links["next"]))
	assert.Contains(t, header, fmt.Sprintf(`<%s>; rel="self"`, body.Links["self"]))
}

type failingCollection struct{}

func (failingCollection) Count(context.Context) (int64, error) {
	return 0, errors.New("connection refused")
}

func (failingCollection) Slice(context.Context, int, int) ([]domain.Article, error) {
	return nil, nil
}

func TestListArticles_StorageFailure(t *testing.T) {
	e := echo.New()
	e.HTTPErrorHandler = apperr.GlobalErrorHandler()
	NewArticleRouter(e, failingCollection{}).Bind()

	rec, _ := get(t, e, "/articles")

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":"500"`)
}

func TestListArticles_MalformedBaseURL(t *testing.T) {
	e := newTestEcho(t, 3, WithBaseURL("http://[::1"))

	rec, _ := get(t, e, "/articles")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "request URL cannot be used for pagination links")
}

func TestListArticles_MissingHost(t *testing.T) {
	e := newTestEcho(t, 3)

	req := httptest.NewRequest(http.MethodGet, "/articles", nil)
	req.Host = ""
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "request host is required to build pagination links")
}

func TestListArticles_MissingHostWithBaseURL(t *testing.T) {
	e := newTestEcho(t, 3, WithBaseURL("https://api.example.org"))

	req := httptest.NewRequest(http.MethodGet, "/articles?page[size]=2", nil)
	req.Host = ""
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var body response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Len(t, body.Data, 2)
	assert.Equal(t, map[string]int64{"total": 3, "pages": 2}, body.Meta)
	assert.Equal(t, "https://api.example.org/articles?page%5Bsize%5D=2&page%5Bnumber%5D=1", body.Links["self"])
}
