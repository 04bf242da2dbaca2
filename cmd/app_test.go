package cmd

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-resty/resty/v2"
	"github.com/holmes89/qaa/cmd/form"
	qaa "github.com/holmes89/qaa/lib"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recorded struct {
	method string
	path   string
	body   string
}

type cannedRunner string

func (r cannedRunner) Run() (string, error) { return string(r), nil }

func newTestApp(t *testing.T, status int, response any) (*App, *bytes.Buffer, *[]recorded) {
	t.Helper()
	var calls []recorded
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		b, _ := io.ReadAll(r.Body)
		calls = append(calls, recorded{method: r.Method, path: r.URL.Path, body: string(b)})
		if response == nil {
			w.WriteHeader(status)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_ = json.NewEncoder(w).Encode(response)
	}))
	t.Cleanup(srv.Close)

	out := &bytes.Buffer{}
	a := &App{
		client:  resty.New(),
		baseURL: srv.URL + "/",
		out:     out,
		prompt:  func(string) form.Runner { return cannedRunner("prompted") },
		confirm: func(string) form.Runner { return cannedRunner("y") },
	}
	return a, out, &calls
}

func testCmd() *cobra.Command {
	c := &cobra.Command{}
	c.Flags().Bool("yes", false, "")
	c.SetContext(context.Background())
	return c
}

func TestListQAA(t *testing.T) {
	a, out, calls := newTestApp(t, http.StatusOK, []qaa.QAA{
		{ID: 1, Question: "What is 2+2?", Answer: "4"},
		{ID: 2, Question: "multi\nline", Answer: ""},
	})

	require.NoError(t, a.ListQAA(testCmd(), nil))
	require.Len(t, *calls, 1)
	assert.Equal(t, recorded{method: http.MethodGet, path: "/qaa/get-all-qaa"}, (*calls)[0])
	assert.Contains(t, out.String(), "What is 2+2?")
	assert.Contains(t, out.String(), "multi line")
}

func TestCreateQuestionPromptsWhenNoArg(t *testing.T) {
	a, out, calls := newTestApp(t, http.StatusCreated, qaa.QAA{ID: 3, Question: "prompted"})

	require.NoError(t, a.CreateQuestion(testCmd(), nil))
	require.Len(t, *calls, 1)
	assert.Equal(t, http.MethodPost, (*calls)[0].method)
	assert.Equal(t, "/qaa/create-question", (*calls)[0].path)
	assert.JSONEq(t, `{"question":"prompted"}`, (*calls)[0].body)
	assert.Contains(t, out.String(), "prompted")
}

func TestUpdateAnswerUsesArgs(t *testing.T) {
	a, _, calls := newTestApp(t, http.StatusNoContent, nil)

	require.NoError(t, a.UpdateAnswer(testCmd(), []string{"5", "four"}))
	require.Len(t, *calls, 1)
	assert.Equal(t, "/qaa/edit-qaa-by-id/5/answer", (*calls)[0].path)
	assert.JSONEq(t, `{"answer":"four"}`, (*calls)[0].body)
}

func TestDeleteAllConfirms(t *testing.T) {
	a, _, calls := newTestApp(t, http.StatusNoContent, nil)
	require.NoError(t, a.DeleteAll(testCmd(), nil))
	require.Len(t, *calls, 1)
	assert.Equal(t, "/qaa/delete-all-qaa", (*calls)[0].path)

	a.confirm = func(string) form.Runner { return cannedRunner("n") }
	assert.ErrorIs(t, a.DeleteAll(testCmd(), nil), errAborted)
	assert.Len(t, *calls, 1)
}

func TestAPIErrorDetail(t *testing.T) {
	a, _, _ := newTestApp(t, http.StatusNotFound, map[string]string{"detail": "Question and answer not found"})

	err := a.GetQAA(testCmd(), []string{"99"})
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusNotFound, apiErr.Status)
	assert.Equal(t, "Question and answer not found", apiErr.Detail)
}

func TestAPIErrorNonStringDetail(t *testing.T) {
	a, _, _ := newTestApp(t, http.StatusUnprocessableEntity, map[string]any{"detail": []string{"id must be positive"}})

	err := a.DeleteQAA(testCmd(), []string{"0"})
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusUnprocessableEntity, apiErr.Status)
	assert.JSONEq(t, `["id must be positive"]`, apiErr.Detail)
}

func TestAIAnswer(t *testing.T) {
	a, out, calls := newTestApp(t, http.StatusOK, qaa.QAA{ID: 1, Question: "q", Answer: "generated"})

	require.NoError(t, a.AIAnswer(testCmd(), []string{"1"}))
	assert.Equal(t, recorded{method: http.MethodPut, path: "/langchain/1/ai-answer"}, (*calls)[0])
	assert.Contains(t, out.String(), "generated")
}
