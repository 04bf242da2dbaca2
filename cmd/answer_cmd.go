package cmd

import (
	"net/http"
	"net/url"

	qaa "github.com/holmes89/qaa/lib"
	"github.com/spf13/cobra"
)

// answerCmd asks the configured model to answer a stored question
var answerCmd = &cobra.Command{
	Use:   "answer <id>",
	Short: "generate and store an answer with the language model",
	Args:  cobra.ExactArgs(1),
	RunE:  app.AIAnswer,
}

func (app *App) AIAnswer(cmd *cobra.Command, args []string) error {
	var res qaa.QAA
	if err := app.do(cmd.Context(), http.MethodPut, "/langchain/"+url.PathEscape(args[0])+"/ai-answer", nil, &res); err != nil {
		return err
	}
	return app.printRecords(res)
}

func init() {
	rootCmd.AddCommand(answerCmd)
}
