package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
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
		Use:   "finacct-cli",
		Short: "Finacct CLI tool",
		Long:  `A command line interface for interacting with the finacct API.`,
	}

	rootCmd.PersistentFlags().StringVar(&baseURL, "url", "http://localhost:8080", "Base URL of the finacct API")
	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", 10*time.Second, "Request timeout")

	rootCmd.AddCommand(invoiceCmd())
	rootCmd.AddCommand(finAccountCmd())
	rootCmd.AddCommand(rateCmd())
	rootCmd.AddCommand(glClassCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func invoiceCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "invoice",
		Short: "Invoice allocation operations",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "unapplied <payment-id>",
		Short: "List open invoices a payment could still be applied to",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return getJSON("/api/v1/payments/" + args[0] + "/unapplied-invoices")
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "reconcile <invoice-id>",
		Short: "Re-derive an invoice's paid state from its applications",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return postJSON("/api/v1/invoices/"+args[0]+"/reconcile", nil)
		},
	})

	return cmd
}

func finAccountCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "finacct",
		Short: "Financial account operations",
	}

	var payments []string
	var group bool

	depositCmd := &cobra.Command{
		Use:   "deposit-withdraw <fin-account-id>",
		Short: "Turn a batch of payments into account transactions",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			body := map[string]any{"payment_ids": payments}
			if group {
				body["group_in_one_transaction"] = "Y"
			}
			return postJSON("/api/v1/fin-accounts/"+args[0]+"/deposit-withdraw", body)
		},
	}
	depositCmd.Flags().StringSliceVar(&payments, "payments", nil, "Payment IDs to process")
	depositCmd.Flags().BoolVar(&group, "group", false, "Create one grouped deposit for the batch")
	cmd.AddCommand(depositCmd)

	cmd.AddCommand(&cobra.Command{
		Use:   "get-trans <trans-id>",
		Short: "Show a financial account transaction",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return getJSON("/api/v1/fin-account-trans/" + args[0])
		},
	})

	return cmd
}

func rateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rate",
		Short: "Settlement rate derivation",
	}

	var paymentID, invoiceID, amount string

	bind := func(c *cobra.Command) *cobra.Command {
		c.Flags().StringVar(&paymentID, "payment", "", "Payment ID")
		c.Flags().StringVar(&invoiceID, "invoice", "", "Invoice ID")
		c.Flags().StringVar(&amount, "amount", "0", "Applied amount")
		return c
	}

	cmd.AddCommand(bind(&cobra.Command{
		Use:   "purchase-invoice",
		Short: "Derive the rate for a purchase invoice application",
		RunE: func(cmd *cobra.Command, args []string) error {
			return postJSON("/api/v1/rates/purchase-invoice", map[string]any{
				"payment_id":     paymentID,
				"invoice_id":     invoiceID,
				"amount_applied": amount,
			})
		},
	}))

	cmd.AddCommand(bind(&cobra.Command{
		Use:   "outgoing-payment",
		Short: "Derive the rate for an outgoing payment application",
		RunE: func(cmd *cobra.Command, args []string) error {
			return postJSON("/api/v1/rates/outgoing-payment", map[string]any{
				"payment_id":     paymentID,
				"invoice_id":     invoiceID,
				"amount_applied": amount,
			})
		},
	}))

	return cmd
}

func glClassCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "glclass",
		Short: "GL account class checks",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "check <gl-account-id> <class-id>",
		Short: "Check whether a GL account belongs to a class",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return getJSON("/api/v1/gl-accounts/" + args[0] + "/classes/" + args[1])
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "debit <gl-account-id>",
		Short: "Check whether a GL account is debit-natured",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return getJSON("/api/v1/gl-accounts/" + args[0] + "/debit")
		},
	})

	return cmd
}

func getJSON(path string) error {
	client := &http.Client{Timeout: timeout}
	resp, err := client.Get(baseURL + path)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	return printResponse(resp)
}

func postJSON(path string, body any) error {
	payload := []byte("{}")
	if body != nil {
		var err error
		payload, err = json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request: %w", err)
		}
	}

	client := &http.Client{Timeout: timeout}
	resp, err := client.Post(baseURL+path, "application/json", bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	return printResponse(resp)
}

func printResponse(resp *http.Response) error {
	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response: %w", err)
	}

	var decoded any
	if err := json.Unmarshal(raw, &decoded); err != nil {
		fmt.Println(strings.TrimSpace(string(raw)))
	} else {
		printJSON(decoded)
	}

	if resp.StatusCode >= 400 {
		return fmt.Errorf("request failed with status %d", resp.StatusCode)
	}

	return nil
}

func printJSON(v any) {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		fmt.Printf("failed to render response: %v\n", err)
		return
	}
	fmt.Println(string(out))
}
