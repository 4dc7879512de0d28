package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-resty/resty/v2"
	"github.com/go-savor/savor/internal/menu/model"
	"github.com/go-savor/savor/pkg/version"
	"github.com/spf13/cobra"
)

var serverAddr string

var rootCmd = &cobra.Command{
	Use:   "savor-cli",
	Short: "savor cli is a command line client for the savor admin API",
	Long:  "savor cli is a command line client for the savor admin API",
	Run: func(cmd *cobra.Command, args []string) {
		err := cmd.Help()
		if err != nil {
			return
		}
	},
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "list menu items",
	RunE: func(cmd *cobra.Command, args []string) error {
		sortKey, _ := cmd.Flags().GetString("sort")

		var rep struct {
			Code   int              `json:"code"`
			Detail []model.MenuItem `json:"detail"`
			Msg    string           `json:"msg"`
		}
		resp, err := client().R().
			SetQueryParam("sort", sortKey).
			SetResult(&rep).
			Get("/api/v1/menu")
		if err != nil {
			return err
		}
		if resp.IsError() {
			return fmt.Errorf("list menu items: %s", resp.Status())
		}

		out, err := json.MarshalIndent(rep.Detail, "", "  ")
		if err != nil {
			return err
		}
		fmt.Println(string(out))
		return nil
	},
}

var deleteCmd = &cobra.Command{
	Use:   "delete <category> <id>",
	Short: "delete one menu item",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		resp, err := client().R().
			Delete(fmt.Sprintf("/api/v1/menu/%s/%s", args[0], args[1]))
		if err != nil {
			return err
		}
		if resp.IsError() {
			return fmt.Errorf("delete menu item: %s", resp.Status())
		}
		fmt.Printf("deleted %s/%s\n", args[0], args[1])
		return nil
	},
}

var uploadCmd = &cobra.Command{
	Use:   "upload <file>",
	Short: "upload a menu item image",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		f, err := os.Open(args[0])
		if err != nil {
			return err
		}
		defer f.Close()

		resp, err := client().R().
			SetFileReader("file", filepath.Base(args[0]), f).
			Post("/api/v1/images")
		if err != nil {
			return err
		}
		if resp.IsError() {
			return fmt.Errorf("upload image: %s", resp.Status())
		}
		fmt.Println(resp.String())
		return nil
	},
}

func client() *resty.Client {
	return resty.New().SetBaseURL(serverAddr)
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&serverAddr, "server", "s", "http://127.0.0.1:8080", "savor server address")
	listCmd.Flags().String("sort", "none", "sort key: category, stock, option or none")

	rootCmd.AddCommand(version.VersionCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(deleteCmd)
	rootCmd.AddCommand(uploadCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		panic(err)
	}
}
