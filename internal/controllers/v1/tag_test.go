package v1_test

import (
	"net/http"
	"testing"

	"github.com/google/uuid"
	v1 "github.com/ltabis/thunes/internal/controllers/v1"
	"github.com/ltabis/thunes/test"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) TestTagCreate() {
	tag := createTestTag(suite.T(), v1.TagEditable{Label: "vacation"})

	assert.Equal(suite.T(), "vacation", tag.Data.Label)
}

func (suite *TestSuiteStandard) TestTagCreateDuplicateLabel() {
	_ = createTestTag(suite.T(), v1.TagEditable{Label: "vacation"})
	_ = createTestTag(suite.T(), v1.TagEditable{Label: "vacation"}, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestTagGetSingle() {
	tag := createTestTag(suite.T(), v1.TagEditable{})

	tests := []struct {
		name   string
		id     string
		status int
	}{
		{"Existing", tag.Data.ID.String(), http.StatusOK},
		{"Unknown", uuid.New().String(), http.StatusNotFound},
		{"Invalid", "notauuid", http.StatusBadRequest},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodGet, "http://example.com/v1/tags/"+tt.id, "")
			test.AssertHTTPStatus(t, tt.status, &r)
		})
	}
}

// TestTagsGetFiltered verifies the label and search filters and that tags
// come back alphabetically.
func (suite *TestSuiteStandard) TestTagsGetFiltered() {
	t := suite.T()

	_ = createTestTag(t, v1.TagEditable{Label: "vacation"})
	_ = createTestTag(t, v1.TagEditable{Label: "salary"})

	tests := []struct {
		name  string
		query string
		count int
	}{
		{"By label", "label=salary", 1},
		{"By search", "search=VACA", 1},
		{"No match", "label=groceries", 0},
		{"All", "", 2},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodGet, "http://example.com/v1/tags?"+tt.query, "")
			test.AssertHTTPStatus(t, http.StatusOK, &r)

			var response v1.TagListResponse
			test.DecodeResponse(t, &r, &response)
			assert.Len(t, response.Data, tt.count)
		})
	}

	r := test.Request(t, http.MethodGet, "http://example.com/v1/tags", "")
	var response v1.TagListResponse
	test.DecodeResponse(t, &r, &response)
	assert.Equal(t, "salary", response.Data[0].Label)
	assert.Equal(t, "vacation", response.Data[1].Label)
}

func (suite *TestSuiteStandard) TestTagUpdate() {
	tag := createTestTag(suite.T(), v1.TagEditable{Label: "vacation"})

	r := test.Request(suite.T(), http.MethodPatch, "http://example.com/v1/tags/"+tag.Data.ID.String(), map[string]any{
		"label": "travel",
	})
	test.AssertHTTPStatus(suite.T(), http.StatusOK, &r)

	var response v1.TagResponse
	test.DecodeResponse(suite.T(), &r, &response)
	assert.Equal(suite.T(), "travel", response.Data.Label)
}

// TestTagDelete verifies that deleting a tag detaches it from its
// transactions without deleting them.
func (suite *TestSuiteStandard) TestTagDelete() {
	account := createTestAccount(suite.T(), v1.AccountEditable{})
	tag := createTestTag(suite.T(), v1.TagEditable{})
	transaction := createTestTransaction(suite.T(), v1.TransactionEditable{
		Amount:    decimal.NewFromInt(25),
		Direction: v1.DirectionSpending,
		AccountID: account.Data.ID,
		TagIDs:    []uuid.UUID{tag.Data.ID},
	})

	r := test.Request(suite.T(), http.MethodDelete, "http://example.com/v1/tags/"+tag.Data.ID.String(), "")
	test.AssertHTTPStatus(suite.T(), http.StatusNoContent, &r)

	r = test.Request(suite.T(), http.MethodGet, "http://example.com/v1/tags/"+tag.Data.ID.String(), "")
	test.AssertHTTPStatus(suite.T(), http.StatusNotFound, &r)

	r = test.Request(suite.T(), http.MethodGet, "http://example.com/v1/transactions/"+transaction.Data.ID.String(), "")
	test.AssertHTTPStatus(suite.T(), http.StatusOK, &r)

	var response v1.TransactionResponse
	test.DecodeResponse(suite.T(), &r, &response)
	assert.Empty(suite.T(), response.Data.Tags)
}

func (suite *TestSuiteStandard) TestTagOptions() {
	tag := createTestTag(suite.T(), v1.TagEditable{})

	r := test.Request(suite.T(), http.MethodOptions, "http://example.com/v1/tags", "")
	test.AssertHTTPStatus(suite.T(), http.StatusNoContent, &r)
	assert.Equal(suite.T(), "GET, POST", r.Header().Get("allow"))

	r = test.Request(suite.T(), http.MethodOptions, "http://example.com/v1/tags/"+tag.Data.ID.String(), "")
	test.AssertHTTPStatus(suite.T(), http.StatusNoContent, &r)
	assert.Equal(suite.T(), "GET, PATCH, DELETE", r.Header().Get("allow"))
}
