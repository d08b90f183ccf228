package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/iho/leaveflow/internal/adapter/extractor"
	"github.com/iho/leaveflow/internal/adapter/prompt"
	"github.com/iho/leaveflow/internal/adapter/repository/memory"
	"github.com/iho/leaveflow/internal/infrastructure/config"
	"github.com/iho/leaveflow/internal/infrastructure/logger"
	"github.com/iho/leaveflow/internal/infrastructure/roster"
	"github.com/iho/leaveflow/internal/usecase"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "leaveflow",
		Short: "Leave workflow CLI",
		Long:  `An interactive command line client for the leave management workflow.`,
	}

	chatCmd := &cobra.Command{
		Use:   "chat",
		Short: "Start an interactive leave management session",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runChat()
		},
	}

	rootCmd.AddCommand(chatCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func runChat() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load configuration: %w", err)
	}

	appLogger := logger.New(logger.Config{
		Level:  cfg.LogLevel,
		Format: cfg.LogFormat,
	})

	employees := roster.Default()
	if cfg.RosterFile != "" {
		employees, err = roster.Load(cfg.RosterFile)
		if err != nil {
			return fmt.Errorf("load roster: %w", err)
		}
	}

	balanceRepo := memory.NewBalanceRepository(employees)
	historyRepo := memory.NewHistoryRepository()

	intentExtractor := extractor.New(extractor.Config{
		APIKey:  cfg.OpenAIAPIKey,
		Model:   cfg.OpenAIModel,
		BaseURL: cfg.OpenAIBaseURL,
		Timeout: cfg.ExtractionTimeout,
		Logger:  appLogger,
	})

	ledgerUC := usecase.NewLedgerUseCase(balanceRepo)
	lifecycleUC := usecase.NewLifecycleUseCase(ledgerUC, historyRepo, memory.NewULIDGenerator())
	historyUC := usecase.NewHistoryUseCase(historyRepo)
	dialogueUC := usecase.NewDialogueUseCase(
		ledgerUC, lifecycleUC, historyUC,
		intentExtractor, prompt.NewConsole(os.Stdin, os.Stdout), appLogger,
	)

	return runSession(context.Background(), os.Stdin, os.Stdout, employees, dialogueUC)
}

// runSession drives the login and message loop until the user exits or the
// input closes.
func runSession(ctx context.Context, in io.Reader, out io.Writer, employees roster.Roster, dialogueUC *usecase.DialogueUseCase) error {
	names := employees.Names()
	sort.Strings(names)

	scanner := bufio.NewScanner(in)
	readLine := func() (string, bool) {
		if !scanner.Scan() {
			return "", false
		}
		return strings.TrimSpace(scanner.Text()), true
	}

	fmt.Fprintln(out, "\nWelcome to the Leave Management System!")

	for {
		fmt.Fprintf(out, "\nPlease log in (Available employees: %s)\n", strings.Join(names, ", "))
		fmt.Fprint(out, "Enter your name (or 'exit' to quit): ")

		name, ok := readLine()
		if !ok {
			return scanErr(scanner)
		}
		if strings.EqualFold(name, "exit") {
			return nil
		}
		if !employees.Has(name) {
			fmt.Fprintln(out, "Employee not found. Please try again.")
			continue
		}

		fmt.Fprintf(out, "\nLogged in as: %s\n", name)
		fmt.Fprintln(out, "\nYou can:")
		fmt.Fprintln(out, "- Check your leave balance (all or specific types)")
		fmt.Fprintln(out, "- Request a leave")
		fmt.Fprintln(out, "- Cancel a leave")
		fmt.Fprintln(out, "- View your leave history")

		for {
			fmt.Fprintln(out, "\nWhat would you like to do? (type 'logout' to switch user or 'exit' to quit)")
			fmt.Fprint(out, "> ")

			line, ok := readLine()
			if !ok {
				return scanErr(scanner)
			}
			if strings.EqualFold(line, "exit") {
				return nil
			}
			if strings.EqualFold(line, "logout") {
				break
			}
			if line == "" {
				continue
			}

			reply := dialogueUC.ProcessMessage(ctx, name, line)
			fmt.Fprintf(out, "\nResponse: %s\n", reply)
		}
	}
}

func scanErr(scanner *bufio.Scanner) error {
	if err := scanner.Err(); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}
