package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/mgoulart/billtrack/internal/adapter/http/dto"
	"github.com/mgoulart/billtrack/internal/adapter/http/middleware"
)

var (
	baseURL string
	ownerID string
	timeout time.Duration
)

func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "billtrack-cli",
		Short: "BillTrack CLI tool",
		Long:  `A command line interface for interacting with the BillTrack API.`,
	}

	cmd.PersistentFlags().StringVar(&baseURL, "url", "http://localhost:8080", "Base URL of the BillTrack API")
	cmd.PersistentFlags().StringVar(&ownerID, "owner", os.Getenv("BILLTRACK_OWNER"), "Owner ID sent with every request")
	cmd.PersistentFlags().DurationVar(&timeout, "timeout", 10*time.Second, "Request timeout")

	billsCmd := &cobra.Command{
		Use:   "bills",
		Short: "Bill operations",
	}
	billsCmd.AddCommand(billsListCmd(), billsAddCmd(), billsPayCmd(), billsRmCmd())

	budgetCmd := &cobra.Command{
		Use:   "budget",
		Short: "Budget operations",
	}
	budgetCmd.AddCommand(budgetSummaryCmd())

	cmd.AddCommand(billsCmd, budgetCmd, remindersCmd())
	return cmd
}

func billsListCmd() *cobra.Command {
	var status, billType, search string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List bills",
		RunE: func(cmd *cobra.Command, args []string) error {
			query := "?"
			if status != "" {
				query += "status=" + status + "&"
			}
			if billType != "" {
				query += "type=" + billType + "&"
			}
			if search != "" {
				query += "search=" + search + "&"
			}

			var list dto.BillListResponse
			if err := doRequest(http.MethodGet, "/api/v1/bills"+query[:len(query)-1], nil, &list); err != nil {
				return err
			}

			for _, b := range list.Bills {
				fmt.Printf("%-26s  %-30s  %10s  %s  %s\n",
					b.ID, truncate(b.Description, 30), b.AmountFormatted,
					b.DueDate.Format("2006-01-02"), b.Status)
			}
			fmt.Printf("\n%d bills, total %s (split share %s)\n",
				list.Count, list.TotalAmountFormatted, list.TotalSplitAmountFormatted)
			return nil
		},
	}

	cmd.Flags().StringVar(&status, "status", "", "Filter by status (paid, pending, overdue)")
	cmd.Flags().StringVar(&billType, "type", "", "Filter by type (fixed, variable)")
	cmd.Flags().StringVar(&search, "search", "", "Filter by description substring")
	return cmd
}

func billsAddCmd() *cobra.Command {
	var (
		description  string
		amount       string
		due          string
		billType     string
		split        bool
		installments int
	)

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a bill",
		RunE: func(cmd *cobra.Command, args []string) error {
			dueDate, err := time.Parse("2006-01-02", due)
			if err != nil {
				return fmt.Errorf("invalid --due date, want YYYY-MM-DD: %w", err)
			}

			body := map[string]any{
				"description": description,
				"amount":      amount,
				"due_date":    dueDate.Format(time.RFC3339),
				"split":       split,
				"bill_type":   billType,
			}
			if installments > 1 {
				body["is_installment"] = true
				body["total_installments"] = installments
			}

			var result json.RawMessage
			if err := doRequest(http.MethodPost, "/api/v1/bills", body, &result); err != nil {
				return err
			}

			printJSON(result)
			return nil
		},
	}

	cmd.Flags().StringVar(&description, "description", "", "Bill description")
	cmd.Flags().StringVar(&amount, "amount", "0", "Bill amount")
	cmd.Flags().StringVar(&due, "due", "", "Due date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&billType, "type", "variable", "Bill type (fixed, variable)")
	cmd.Flags().BoolVar(&split, "split", false, "Split the bill in half")
	cmd.Flags().IntVar(&installments, "installments", 0, "Create an installment series of this length")
	_ = cmd.MarkFlagRequired("description")
	_ = cmd.MarkFlagRequired("due")
	return cmd
}

func billsPayCmd() *cobra.Command {
	var unpaid bool

	cmd := &cobra.Command{
		Use:   "pay <bill-id>",
		Short: "Mark a bill paid (or unpaid with --undo)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var result json.RawMessage
			body := map[string]any{"paid": !unpaid}
			if err := doRequest(http.MethodPatch, "/api/v1/bills/"+args[0]+"/paid", body, &result); err != nil {
				return err
			}

			printJSON(result)
			return nil
		},
	}

	cmd.Flags().BoolVar(&unpaid, "undo", false, "Mark the bill unpaid instead")
	return cmd
}

func billsRmCmd() *cobra.Command {
	var scope string

	cmd := &cobra.Command{
		Use:   "rm <bill-id>",
		Short: "Delete a bill",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var result dto.DeleteBillResponse
			path := "/api/v1/bills/" + args[0] + "?scope=" + scope
			if err := doRequest(http.MethodDelete, path, nil, &result); err != nil {
				return err
			}

			fmt.Printf("deleted %d bill(s)\n", result.DeletedCount)
			return nil
		},
	}

	cmd.Flags().StringVar(&scope, "scope", "only-this", "Deletion scope for installments (only-this, this-and-future, all-installments)")
	return cmd
}

func budgetSummaryCmd() *cobra.Command {
	var month, year int

	cmd := &cobra.Command{
		Use:   "summary",
		Short: "Show the monthly budget summary",
		RunE: func(cmd *cobra.Command, args []string) error {
			path := "/api/v1/budget/summary"
			if month > 0 && year > 0 {
				path = fmt.Sprintf("%s?month=%d&year=%d", path, month, year)
			}

			var overview dto.BudgetOverviewResponse
			if err := doRequest(http.MethodGet, path, nil, &overview); err != nil {
				return err
			}

			fmt.Printf("%s\n", overview.MonthLabel)
			fmt.Printf("  current balance:  %s\n", overview.Summary.CurrentBalanceFormatted)
			fmt.Printf("  expected balance: %s\n", overview.Summary.ExpectedBalanceFormatted)
			fmt.Printf("  entries: %d\n", len(overview.Entries))
			return nil
		},
	}

	cmd.Flags().IntVar(&month, "month", 0, "Month (1-12), defaults to the current month")
	cmd.Flags().IntVar(&year, "year", 0, "Year, defaults to the current year")
	return cmd
}

func remindersCmd() *cobra.Command {
	var days int

	cmd := &cobra.Command{
		Use:   "reminders",
		Short: "List overdue and soon-due bills",
		RunE: func(cmd *cobra.Command, args []string) error {
			path := "/api/v1/reminders/due"
			if days > 0 {
				path = fmt.Sprintf("%s?days=%d", path, days)
			}

			var due dto.DueBillsResponse
			if err := doRequest(http.MethodGet, path, nil, &due); err != nil {
				return err
			}

			fmt.Printf("overdue (%d):\n", len(due.Overdue))
			for _, b := range due.Overdue {
				fmt.Printf("  %s  %s  %s\n", b.DueDate.Format("2006-01-02"), b.AmountFormatted, truncate(b.Description, 40))
			}
			fmt.Printf("due soon (%d):\n", len(due.DueSoon))
			for _, b := range due.DueSoon {
				fmt.Printf("  %s  %s  %s\n", b.DueDate.Format("2006-01-02"), b.AmountFormatted, truncate(b.Description, 40))
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&days, "days", 0, "Lookahead window in days")
	return cmd
}

func doRequest(method, path string, body any, out any) error {
	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request: %w", err)
		}
		reader = bytes.NewReader(encoded)
	}

	req, err := http.NewRequest(method, baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(middleware.OwnerHeader, ownerID)

	client := &http.Client{Timeout: timeout}
	resp, err := client.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode >= 400 {
		var apiErr dto.ErrorResponse
		if json.Unmarshal(respBody, &apiErr) == nil && apiErr.Error != "" {
			return fmt.Errorf("%s: %s", apiErr.Error, apiErr.Message)
		}
		return fmt.Errorf("unexpected status %d: %s", resp.StatusCode, string(respBody))
	}

	if out == nil || len(respBody) == 0 {
		return nil
	}
	return json.Unmarshal(respBody, out)
}

func printJSON(v any) {
	encoded, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		fmt.Printf("failed to render response: %v\n", err)
		return
	}
	fmt.Println(string(encoded))
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	if max <= 3 {
		return s[:max]
	}
	return s[:max-3] + "..."
}
