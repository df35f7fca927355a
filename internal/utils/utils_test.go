// internal/utils/utils_test.go
package utils

import (
	"math"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sampleRequest struct {
	Kind   string  `json:"kind" validate:"required,product_kind"`
	Link   string  `json:"link" validate:"omitempty,download_link"`
	Status string  `json:"status" validate:"omitempty,order_status"`
	Price  float64 `json:"price" validate:"gt=0"`
}

func TestValidateStructCustomTags(t *testing.T) {
	ok := sampleRequest{Kind: "digital", Link: "https://cdn.example.com/f", Status: "SHIPPED", Price: 1}
	assert.NoError(t, ValidateStruct(&ok))

	bad := sampleRequest{Kind: "vinyl", Link: "ftp://host/f", Status: "lost", Price: 0}
	errs := GetValidationErrors(ValidateStruct(&bad))
	require.Len(t, errs, 4)

	fields := map[string]string{}
	for _, e := range errs {
		fields[e.Field] = e.Tag
	}
	assert.Equal(t, "product_kind", fields["kind"])
	assert.Equal(t, "download_link", fields["link"])
	assert.Equal(t, "order_status", fields["status"])
	assert.Equal(t, "gt", fields["price"])
}

type measuredRequest struct {
	Weight     float64    `json:"weight" validate:"gt=0,finite"`
	Dimensions [3]float64 `json:"dimensions" validate:"dive,gt=0,finite"`
}

func TestValidateFinite(t *testing.T) {
	assert.NoError(t, ValidateStruct(&measuredRequest{Weight: 1.5, Dimensions: [3]float64{1, 2, 3}}))

	errs := GetValidationErrors(ValidateStruct(&measuredRequest{Weight: math.Inf(1), Dimensions: [3]float64{1, 2, 3}}))
	require.Len(t, errs, 1)
	assert.Equal(t, "finite", errs[0].Tag)
	assert.Equal(t, "weight must be a finite number", errs[0].Message)

	errs = GetValidationErrors(ValidateStruct(&measuredRequest{Weight: 1, Dimensions: [3]float64{1, math.Inf(1), 3}}))
	require.Len(t, errs, 1)
	assert.Equal(t, "finite", errs[0].Tag)
}

func TestValidationMessage(t *testing.T) {
	err := ValidateStruct(&sampleRequest{Kind: "generic"})
	assert.Equal(t, "price must be greater than 0", ValidationMessage(err))
}

func TestPaginate(t *testing.T) {
	items := []int{1, 2, 3, 4, 5}

	assert.Equal(t, []int{1, 2}, Paginate(items, PaginationParams{Page: 1, Limit: 2}))
	assert.Equal(t, []int{5}, Paginate(items, PaginationParams{Page: 3, Limit: 2}))
	assert.Empty(t, Paginate(items, PaginationParams{Page: 4, Limit: 2}))
	assert.Equal(t, items, Paginate(items, PaginationParams{}))
	assert.Empty(t, Paginate(items, PaginationParams{Page: math.MaxInt / 10, Limit: 20}))
	assert.Empty(t, Paginate(items, PaginationParams{Page: math.MaxInt, Limit: 100}))
	assert.Empty(t, Paginate([]int{}, PaginationParams{Page: 1, Limit: 20}))

	result := CreatePaginationResult(items, 5, PaginationParams{Page: 1, Limit: 2})
	assert.Equal(t, 3, result.TotalPages)
}

func TestGetPaginationParams(t *testing.T) {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest("GET", "/?page=0&limit=500&order=sideways&sort=price&search=lamp", nil)

	params := GetPaginationParams(c)
	assert.Equal(t, 1, params.Page)
	assert.Equal(t, 20, params.Limit)
	assert.Equal(t, "asc", params.Order)
	assert.Equal(t, "price", SortField(params, []string{"name", "price"}))
	assert.Equal(t, "lamp", params.Search)
}

func TestJWTRoundTrip(t *testing.T) {
	SetJWTSecret("test-secret")

	token, err := GenerateJWT("ops@example.com", RoleOperator, 1)
	require.NoError(t, err)

	claims, err := ValidateJWT(token)
	require.NoError(t, err)
	assert.Equal(t, "ops@example.com", claims.Subject)
	assert.Equal(t, RoleOperator, claims.Role)

	SetJWTSecret("another-secret")
	_, err = ValidateJWT(token)
	assert.Error(t, err)

	_, err = GenerateJWT("someone", "root", 1)
	assert.Error(t, err)
}

func TestExpiredJWT(t *testing.T) {
	SetJWTSecret("test-secret")

	token, err := GenerateJWT("ops@example.com", RoleOperator, -1)
	require.NoError(t, err)

	_, err = ValidateJWT(token)
	assert.Error(t, err)
}

func TestRandomHelpers(t *testing.T) {
	secret, err := GenerateSigningSecret()
	require.NoError(t, err)
	assert.Len(t, secret, 48)

	assert.Len(t, TokenFingerprint("abc"), 12)
	assert.Equal(t, TokenFingerprint("abc"), TokenFingerprint("abc"))
	assert.NotEqual(t, TokenFingerprint("abc"), TokenFingerprint("abd"))
}
