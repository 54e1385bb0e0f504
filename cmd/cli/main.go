package main

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"
)

var (
	baseURL string
	timeout time.Duration
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "chartledger-cli",
		Short: "ChartLedger CLI tool",
		Long:  `A command line interface for interacting with the ChartLedger API.`,
	}

	rootCmd.PersistentFlags().StringVar(&baseURL, "url", "http://localhost:8080", "Base URL of the ChartLedger API")
	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", 10*time.Second, "Request timeout")

	// Account commands
	accountCmd := &cobra.Command{
		Use:   "account",
		Short: "Account operations",
	}
	accountCmd.AddCommand(accountCreateCmd(), accountListCmd(), accountGetCmd())
	rootCmd.AddCommand(accountCmd)

	// Entry commands
	entryCmd := &cobra.Command{
		Use:   "entry",
		Short: "Entry operations",
	}
	entryCmd.AddCommand(entryPostCmd(), entryGetCmd())
	rootCmd.AddCommand(entryCmd)

	// Balance command
	rootCmd.AddCommand(balanceCmd())

	// Ledger commands
	ledgerCmd := &cobra.Command{
		Use:   "ledger",
		Short: "Ledger-wide operations",
	}
	ledgerCmd.AddCommand(trialBalanceCmd(), typeBalanceCmd())
	rootCmd.AddCommand(ledgerCmd)

	// Chart commands
	chartCmd := &cobra.Command{
		Use:   "chart",
		Short: "Chart of accounts operations",
	}
	chartCmd.AddCommand(chartLoadCmd())
	rootCmd.AddCommand(chartCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func accountCreateCmd() *cobra.Command {
	var (
		accountType string
		code        int64
		rollupCode  int64
		name        string
		contra      bool
	)

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create an account",
		RunE: func(cmd *cobra.Command, args []string) error {
			return apiPost("/api/v1/accounts", map[string]any{
				"type":        accountType,
				"code":        code,
				"rollup_code": rollupCode,
				"name":        name,
				"contra":      contra,
			})
		},
	}

	cmd.Flags().StringVar(&accountType, "type", "", "Account type (asset, liability, equity, revenue, expense)")
	cmd.Flags().Int64Var(&code, "code", 0, "Account code")
	cmd.Flags().Int64Var(&rollupCode, "rollup-code", 0, "Rollup code the account reports into")
	cmd.Flags().StringVar(&name, "name", "", "Account name")
	cmd.Flags().BoolVar(&contra, "contra", false, "Mark the account as contra")
	cmd.MarkFlagRequired("type")
	cmd.MarkFlagRequired("code")
	cmd.MarkFlagRequired("name")

	return cmd
}

func accountListCmd() *cobra.Command {
	var accountType string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List accounts",
		RunE: func(cmd *cobra.Command, args []string) error {
			path := "/api/v1/accounts"
			if accountType != "" {
				path += "?type=" + accountType
			}
			return apiGet(path)
		},
	}

	cmd.Flags().StringVar(&accountType, "type", "", "Filter by account type")

	return cmd
}

func accountGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <id>",
		Short: "Get an account by ID",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return apiGet("/api/v1/accounts/" + args[0])
		},
	}
}

func entryPostCmd() *cobra.Command {
	var (
		description string
		date        string
		debits      []string
		credits     []string
	)

	cmd := &cobra.Command{
		Use:   "post",
		Short: "Post a balanced entry",
		RunE: func(cmd *cobra.Command, args []string) error {
			amounts := make([]map[string]any, 0, len(debits)+len(credits))
			for _, d := range debits {
				amount, err := parseAmountFlag(d, "debit")
				if err != nil {
					return err
				}
				amounts = append(amounts, amount)
			}
			for _, c := range credits {
				amount, err := parseAmountFlag(c, "credit")
				if err != nil {
					return err
				}
				amounts = append(amounts, amount)
			}

			return apiPost("/api/v1/entries", map[string]any{
				"description": description,
				"date":        date,
				"amounts":     amounts,
			})
		},
	}

	cmd.Flags().StringVar(&description, "description", "", "Entry description")
	cmd.Flags().StringVar(&date, "date", "", "Entry date (YYYY-MM-DD, defaults to today)")
	cmd.Flags().StringArrayVar(&debits, "debit", nil, "Debit line as account-id=amount (repeatable)")
	cmd.Flags().StringArrayVar(&credits, "credit", nil, "Credit line as account-id=amount (repeatable)")
	cmd.MarkFlagRequired("description")

	return cmd
}

func entryGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <id>",
		Short: "Get an entry with its amounts",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return apiGet("/api/v1/entries/" + args[0])
		},
	}
}

func balanceCmd() *cobra.Command {
	var (
		from   string
		to     string
		rollup bool
		side   string
	)

	cmd := &cobra.Command{
		Use:   "balance <account-id>",
		Short: "Show an account balance",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := "/api/v1/accounts/" + args[0] + "/balance"
			switch {
			case rollup:
				path += "/rollup"
			case side == "credits" || side == "debits":
				path += "/" + side
			case side != "":
				return fmt.Errorf("invalid side %q, want credits or debits", side)
			}
			return apiGet(path + periodQuery(from, to))
		},
	}

	cmd.Flags().StringVar(&from, "from", "", "Period start (YYYY-MM-DD)")
	cmd.Flags().StringVar(&to, "to", "", "Period end (YYYY-MM-DD)")
	cmd.Flags().BoolVar(&rollup, "rollup", false, "Aggregate a rollup account's children")
	cmd.Flags().StringVar(&side, "side", "", "Show raw credits or debits instead of the signed balance")

	return cmd
}

func trialBalanceCmd() *cobra.Command {
	var (
		from string
		to   string
	)

	cmd := &cobra.Command{
		Use:   "trial-balance",
		Short: "Check the accounting equation",
		RunE: func(cmd *cobra.Command, args []string) error {
			body, err := apiGetBody("/api/v1/ledger/trial-balance" + periodQuery(from, to))
			if err != nil {
				return err
			}

			var result struct {
				TrialBalance string `json:"trial_balance"`
				Balanced     bool   `json:"balanced"`
			}
			if err := json.Unmarshal(body, &result); err != nil {
				return fmt.Errorf("failed to parse response: %w", err)
			}

			if result.Balanced {
				fmt.Println("Trial balance PASSED")
			} else {
				fmt.Printf("Trial balance FAILED: %s\n", result.TrialBalance)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&from, "from", "", "Period start (YYYY-MM-DD)")
	cmd.Flags().StringVar(&to, "to", "", "Period end (YYYY-MM-DD)")

	return cmd
}

func typeBalanceCmd() *cobra.Command {
	var (
		from string
		to   string
	)

	cmd := &cobra.Command{
		Use:   "type-balance <type>",
		Short: "Show the combined balance of an account type",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return apiGet("/api/v1/ledger/balance/" + args[0] + periodQuery(from, to))
		},
	}

	cmd.Flags().StringVar(&from, "from", "", "Period start (YYYY-MM-DD)")
	cmd.Flags().StringVar(&to, "to", "", "Period end (YYYY-MM-DD)")

	return cmd
}

func chartLoadCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "load <file.csv>",
		Short: "Load a chart of accounts from a CSV file",
		Long:  "Reads rows of type,code,rollup_code,name,contra and creates each account.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := os.Open(args[0])
			if err != nil {
				return err
			}
			defer f.Close()

			rows, err := csv.NewReader(f).ReadAll()
			if err != nil {
				return err
			}

			created := 0
			for i, row := range rows {
				if len(row) != 5 {
					return fmt.Errorf("row %d: expected 5 fields, got %d", i+1, len(row))
				}

				code, err := strconv.ParseInt(strings.TrimSpace(row[1]), 10, 64)
				if err != nil {
					return fmt.Errorf("row %d: bad code: %w", i+1, err)
				}
				rollupCode, err := strconv.ParseInt(strings.TrimSpace(row[2]), 10, 64)
				if err != nil {
					return fmt.Errorf("row %d: bad rollup code: %w", i+1, err)
				}
				contra, err := strconv.ParseBool(strings.TrimSpace(row[4]))
				if err != nil {
					return fmt.Errorf("row %d: bad contra flag: %w", i+1, err)
				}

				err = apiPost("/api/v1/accounts", map[string]any{
					"type":        strings.TrimSpace(row[0]),
					"code":        code,
					"rollup_code": rollupCode,
					"name":        strings.TrimSpace(row[3]),
					"contra":      contra,
				})
				if err != nil {
					return fmt.Errorf("row %d: %w", i+1, err)
				}
				created++
			}

			fmt.Printf("Created %d accounts\n", created)
			return nil
		},
	}
}

func parseAmountFlag(value, side string) (map[string]any, error) {
	accountID, amount, ok := strings.Cut(value, "=")
	if !ok || accountID == "" || amount == "" {
		return nil, fmt.Errorf("invalid %s line %q, want account-id=amount", side, value)
	}
	return map[string]any{
		"account_id": accountID,
		"side":       side,
		"amount":     amount,
	}, nil
}

func periodQuery(from, to string) string {
	params := make([]string, 0, 2)
	if from != "" {
		params = append(params, "from="+from)
	}
	if to != "" {
		params = append(params, "to="+to)
	}
	if len(params) == 0 {
		return ""
	}
	return "?" + strings.Join(params, "&")
}

func apiGet(path string) error {
	body, err := apiGetBody(path)
	if err != nil {
		return err
	}
	return printBody(body)
}

func apiGetBody(path string) ([]byte, error) {
	client := &http.Client{Timeout: timeout}
	resp, err := client.Get(baseURL + path)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	if resp.StatusCode >= http.StatusBadRequest {
		return nil, fmt.Errorf("request failed (status %d): %s", resp.StatusCode, string(body))
	}
	return body, nil
}

func apiPost(path string, payload any) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	client := &http.Client{Timeout: timeout}
	resp, err := client.Post(baseURL+path, "application/json", strings.NewReader(string(data)))
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	if resp.StatusCode >= http.StatusBadRequest {
		return fmt.Errorf("request failed (status %d): %s", resp.StatusCode, string(body))
	}
	return printBody(body)
}

func printBody(body []byte) error {
	var pretty map[string]any
	if err := json.Unmarshal(body, &pretty); err != nil {
		fmt.Println(string(body))
		return nil
	}
	printJSON(pretty)
	return nil
}

func printJSON(v any) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		fmt.Printf("failed to render response: %v\n", err)
		return
	}
	fmt.Println(string(data))
}
