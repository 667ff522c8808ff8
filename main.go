// mailcraft CLI - render, export and check email layouts without the web UI
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/joeblew999/plat-mailcraft/internal/layout"
	"github.com/joeblew999/plat-mailcraft/internal/model"
	"github.com/joeblew999/plat-mailcraft/pkg/config"
	"github.com/joeblew999/plat-mailcraft/pkg/db"
	"github.com/joeblew999/plat-mailcraft/pkg/mail"
	"github.com/joho/godotenv"
)

const version = "mailcraft v0.1.0"

func main() {
	_ = godotenv.Load()

	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	switch os.Args[1] {
	case "layouts":
		layoutsCmd()
	case "render":
		renderCmd(os.Args[2:])
	case "export":
		exportCmd(os.Args[2:])
	case "validate":
		validateCmd(os.Args[2:])
	case "send":
		sendCmd(os.Args[2:])
	case "version":
		fmt.Println(version)
	case "help", "-h", "--help":
		printUsage()
	default:
		fmt.Printf("Unknown command: %s\n\n", os.Args[1])
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`mailcraft - Email Template CLI

Usage:
  mailcraft <command> [options]

Commands:
  layouts    List the built-in layouts
  render     Render a layout with the given fields to HTML
  export     Render a saved template from the database to HTML
  validate   Validate HTML for email client compatibility
  send       Send a test email via SMTP
  version    Show version
  help       Show this help

Examples:
  mailcraft render -layout=template3 -body="Hi" -out=email.html
  mailcraft export -id=1 -out=welcome.html
  mailcraft validate -file=email.html
  mailcraft send -to=test@example.com -file=email.html

Environment Variables:
  DATA_PATH           Base data directory (default: ./.data)
  MAILCRAFT_DB_PATH   SQLite database (default: $DATA_PATH/mailcraft.db)
  GMAIL_USERNAME      Gmail username for sending
  GMAIL_APP_PASSWORD  Gmail app password for sending`)
}

func layoutsCmd() {
	fmt.Println("Layouts:")
	for _, l := range layout.All {
		marker := ""
		if l == layout.Default {
			marker = " (default)"
		}
		fmt.Printf("  • %-10s %s%s\n", l, l.Description(), marker)
	}
}

func renderCmd(args []string) {
	fs := flag.NewFlagSet("render", flag.ExitOnError)
	name := fs.String("layout", layout.Default.String(), "Layout name (template1..template10)")
	header := fs.String("header", "", "Header text")
	body := fs.String("body", "", "Body text")
	buttonText := fs.String("button-text", "", "Button label")
	buttonLink := fs.String("button-link", "", "Button URL")
	footer := fs.String("footer", "", "Footer text")
	outFile := fs.String("out", "", "Output file (default: stdout)")
	fs.Parse(args)

	renderer := mustRenderer()
	html, err := renderer.RenderNamed(*name, layout.Fields{
		Header:     *header,
		Body:       *body,
		ButtonText: *buttonText,
		ButtonLink: *buttonLink,
		Footer:     *footer,
	})
	if err != nil {
		fmt.Printf("Error rendering layout: %v\n", err)
		os.Exit(1)
	}

	writeOutput(*outFile, html)
}

func exportCmd(args []string) {
	fs := flag.NewFlagSet("export", flag.ExitOnError)
	id := fs.Int64("id", 0, "Template id")
	dbPath := fs.String("db", config.GetDatabasePath(), "SQLite database path")
	outFile := fs.String("out", "", "Output file (default: <title>.html)")
	fs.Parse(args)

	if *id <= 0 {
		fmt.Println("Error: -id is required")
		os.Exit(1)
	}

	database, err := db.Open(*dbPath)
	if err != nil {
		fmt.Printf("Error opening database: %v\n", err)
		os.Exit(1)
	}
	defer database.Close()

	row, err := model.NewEmailTemplatesModel(database.SqlConn()).FindOne(context.Background(), *id)
	if err != nil {
		fmt.Printf("Error loading template %d: %v\n", *id, err)
		os.Exit(1)
	}

	lay, err := row.Layout()
	if err != nil {
		fmt.Printf("Error: template %d has an invalid layout: %v\n", *id, err)
		os.Exit(1)
	}

	html, err := mustRenderer().Render(lay, row.Fields())
	if err != nil {
		fmt.Printf("Error rendering template: %v\n", err)
		os.Exit(1)
	}

	out := *outFile
	if out == "" {
		out = strings.ReplaceAll(row.Title, " ", "_") + ".html"
	}
	writeOutput(out, html)
}

func validateCmd(args []string) {
	fs := flag.NewFlagSet("validate", flag.ExitOnError)
	file := fs.String("file", "", "HTML file to validate")
	fs.Parse(args)

	if *file == "" {
		fmt.Println("Error: -file is required")
		os.Exit(1)
	}

	content, err := os.ReadFile(*file)
	if err != nil {
		fmt.Printf("Error reading file: %v\n", err)
		os.Exit(1)
	}

	issues := mail.ValidateHTML(string(content))
	if len(issues) == 0 {
		fmt.Printf("✓ %s - No compatibility issues found\n", *file)
		return
	}

	fmt.Printf("⚠ %s - Found %d issue(s):\n", *file, len(issues))
	for _, issue := range issues {
		fmt.Printf("  • %s\n", issue)
	}
	os.Exit(1)
}

func sendCmd(args []string) {
	fs := flag.NewFlagSet("send", flag.ExitOnError)
	to := fs.String("to", "", "Recipient email address")
	file := fs.String("file", "", "HTML file to send")
	subject := fs.String("subject", "mailcraft test email", "Email subject")
	fs.Parse(args)

	if *to == "" || *file == "" {
		fmt.Println("Error: -to and -file are required")
		os.Exit(1)
	}

	recipient, err := mail.ParseAddress(*to)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}

	smtpCfg := mail.GmailConfig()
	if smtpCfg.Username == "" || smtpCfg.Password == "" {
		fmt.Println("Error: GMAIL_USERNAME and GMAIL_APP_PASSWORD environment variables required")
		os.Exit(1)
	}

	content, err := os.ReadFile(*file)
	if err != nil {
		fmt.Printf("Error reading file: %v\n", err)
		os.Exit(1)
	}

	if err := mail.Send(smtpCfg, recipient, *subject, string(content)); err != nil {
		fmt.Printf("Error sending email: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("✓ Email sent to %s\n", recipient)
}

func mustRenderer() *layout.Renderer {
	renderer, err := layout.NewRenderer()
	if err != nil {
		fmt.Printf("Error loading layouts: %v\n", err)
		os.Exit(1)
	}
	return renderer
}

func writeOutput(path, html string) {
	if path == "" {
		fmt.Println(html)
		return
	}
	if err := os.WriteFile(path, []byte(html), 0644); err != nil {
		fmt.Printf("Error writing output: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Rendered to %s (%d bytes)\n", path, len(html))
}
