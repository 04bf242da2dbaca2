package cmd

import (
	"errors"
	"fmt"
	"net/http"
	"net/url"

	"github.com/holmes89/qaa/cmd/form"
	qaa "github.com/holmes89/qaa/lib"
	"github.com/spf13/cobra"
)

var listQAACmd = &cobra.Command{
	Use:   "qaa",
	Short: "list all questions and answers",
	Args:  cobra.NoArgs,
	RunE:  app.ListQAA,
}

func (app *App) ListQAA(cmd *cobra.Command, args []string) error {
	var res []qaa.QAA
	if err := app.do(cmd.Context(), http.MethodGet, "/qaa/get-all-qaa", nil, &res); err != nil {
		return err
	}
	return app.printRecords(res...)
}

var getQAACmd = &cobra.Command{
	Use:   "qaa <id>",
	Short: "get a question and answer",
	Args:  cobra.ExactArgs(1),
	RunE:  app.GetQAA,
}

func (app *App) GetQAA(cmd *cobra.Command, args []string) error {
	var res qaa.QAA
	if err := app.do(cmd.Context(), http.MethodGet, "/qaa/get-qaa-by-id/"+url.PathEscape(args[0]), nil, &res); err != nil {
		return err
	}
	return app.printRecords(res)
}

var createQuestionCmd = &cobra.Command{
	Use:   "question [text]",
	Short: "create a question, prompting for it when not given",
	Args:  cobra.MaximumNArgs(1),
	RunE:  app.CreateQuestion,
}

func (app *App) CreateQuestion(cmd *cobra.Command, args []string) error {
	question, err := app.textArg(args, 0, "question")
	if err != nil {
		return err
	}
	var res qaa.QAA
	if err := app.do(cmd.Context(), http.MethodPost, "/qaa/create-question", qaa.QuestionRequest{Question: question}, &res); err != nil {
		return err
	}
	return app.printRecords(res)
}

var updateQuestionCmd = &cobra.Command{
	Use:   "question <id> [text]",
	Short: "replace the question of a record",
	Args:  cobra.RangeArgs(1, 2),
	RunE:  app.UpdateQuestion,
}

func (app *App) UpdateQuestion(cmd *cobra.Command, args []string) error {
	question, err := app.textArg(args, 1, "question")
	if err != nil {
		return err
	}
	path := "/qaa/edit-qaa-by-id/" + url.PathEscape(args[0]) + "/question"
	if err := app.do(cmd.Context(), http.MethodPut, path, qaa.QuestionRequest{Question: question}, nil); err != nil {
		return err
	}
	fmt.Fprintf(app.out, "updated question of %s\n", args[0])
	return nil
}

var updateAnswerCmd = &cobra.Command{
	Use:   "answer <id> [text]",
	Short: "replace the answer of a record",
	Args:  cobra.RangeArgs(1, 2),
	RunE:  app.UpdateAnswer,
}

func (app *App) UpdateAnswer(cmd *cobra.Command, args []string) error {
	answer, err := app.textArg(args, 1, "answer")
	if err != nil {
		return err
	}
	path := "/qaa/edit-qaa-by-id/" + url.PathEscape(args[0]) + "/answer"
	if err := app.do(cmd.Context(), http.MethodPut, path, qaa.AnswerRequest{Answer: answer}, nil); err != nil {
		return err
	}
	fmt.Fprintf(app.out, "updated answer of %s\n", args[0])
	return nil
}

var deleteQAACmd = &cobra.Command{
	Use:   "qaa <id>",
	Short: "delete a question and answer",
	Args:  cobra.ExactArgs(1),
	RunE:  app.DeleteQAA,
}

func (app *App) DeleteQAA(cmd *cobra.Command, args []string) error {
	if err := app.do(cmd.Context(), http.MethodDelete, "/qaa/delete-qaa-by-id/"+url.PathEscape(args[0]), nil, nil); err != nil {
		return err
	}
	fmt.Fprintf(app.out, "deleted %s\n", args[0])
	return nil
}

var deleteAllCmd = &cobra.Command{
	Use:   "all",
	Short: "delete every question and answer",
	Args:  cobra.NoArgs,
	RunE:  app.DeleteAll,
}

var errAborted = errors.New("aborted")

func (app *App) DeleteAll(cmd *cobra.Command, args []string) error {
	yes, _ := cmd.Flags().GetBool("yes")
	if !yes {
		f := form.Form{}
		f.AddConfirm(&yes, app.confirm("Delete every question and answer"))
		if err := f.Valid(); err != nil {
			return err
		}
		if !yes {
			return errAborted
		}
	}
	if err := app.do(cmd.Context(), http.MethodDelete, "/qaa/delete-all-qaa", nil, nil); err != nil {
		return err
	}
	fmt.Fprintln(app.out, "deleted all")
	return nil
}

// textArg returns args[i] or prompts for it.
func (app *App) textArg(args []string, i int, label string) (string, error) {
	if len(args) > i {
		return args[i], nil
	}
	var text string
	f := form.Form{}
	f.Add(&text, app.prompt(label))
	return text, f.Valid()
}

func init() {
	deleteAllCmd.Flags().BoolP("yes", "y", false, "do not ask for confirmation")

	listCmd.AddCommand(listQAACmd)

	getCmd.AddCommand(getQAACmd)

	createCmd.AddCommand(createQuestionCmd)

	updateCmd.AddCommand(updateQuestionCmd, updateAnswerCmd)

	deleteCmd.AddCommand(deleteQAACmd, deleteAllCmd)
}
