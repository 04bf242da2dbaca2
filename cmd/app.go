package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/holmes89/qaa/cmd/form"
	qaa "github.com/holmes89/qaa/lib"
)

type App struct {
	client  *resty.Client
	baseURL string
	out     io.Writer
	prompt  func(label string) form.Runner
	confirm func(label string) form.Runner
}

func NewApp() *App {
	return &App{
		// ai answers wait on the provider
		client: resty.New().SetTimeout(2 * time.Minute),
		out:    os.Stdout,
		prompt: func(label string) form.Runner {
			return form.TextPrompt(label)
		},
		confirm: func(label string) form.Runner {
			return form.ConfirmPrompt(label)
		},
	}
}

var app = NewApp()

// APIError is a non-2xx response from the service.
type APIError struct {
	Status int
	Detail string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("%d %s: %s", e.Status, http.StatusText(e.Status), e.Detail)
}

type errorBody struct {
	Detail json.RawMessage `json:"detail"`
}

// do sends body as JSON and decodes a JSON response into out when out is not nil.
func (app *App) do(ctx context.Context, method, path string, body, out any) error {
	req := app.client.R().
		SetContext(ctx).
		SetError(&errorBody{})
	if body != nil {
		req.SetBody(body)
	}
	if out != nil {
		req.SetResult(out)
	}

	res, err := req.Execute(method, strings.TrimRight(app.baseURL, "/")+path)
	if err != nil {
		return err
	}
	if !res.IsError() {
		return nil
	}

	apiErr := &APIError{Status: res.StatusCode()}
	if eb, ok := res.Error().(*errorBody); ok && len(eb.Detail) > 0 {
		var s string
		if json.Unmarshal(eb.Detail, &s) == nil {
			apiErr.Detail = s
		} else {
			apiErr.Detail = string(eb.Detail)
		}
	}
	return apiErr
}

func (app *App) printRecords(records ...qaa.QAA) error {
	w := tabwriter.NewWriter(app.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tQUESTION\tANSWER")
	for _, r := range records {
		fmt.Fprintf(w, "%d\t%s\t%s\n", r.ID, oneLine(r.Question), oneLine(r.Answer))
	}
	return w.Flush()
}

func oneLine(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
