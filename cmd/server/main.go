// @title         resume-analyzer API
// @version       1.0
// @description   Сервис оценки резюме: извлекает текст из PDF/DOCX/TXT, находит навыки по словарю, сравнивает их с вакансией и выдаёт рекомендации.
// @BasePath      /api/v1
// @schemes       http
// @host          localhost:8080
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Токен авторизации. Поддерживаются форматы: "Bearer <JWT>" или "<JWT>".
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "resume-analyzer",
	Short: "Resume analyzer HTTP API and CLI",
	Long:  "Extracts text from PDF/DOCX/TXT resumes, matches skills against a job description and suggests improvements. Without a subcommand the HTTP server is started.",
	RunE:  runServe,

	SilenceUsage: true,
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
