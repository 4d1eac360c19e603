// Package extract contains the CLI command for document extraction.
package extract

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/darioristic/crm-monorepo-sub013/cmd/root"
	"github.com/darioristic/crm-monorepo-sub013/internal/container"
	extractor "github.com/darioristic/crm-monorepo-sub013/internal/extract"
)

var companyName string

// Cmd is the extract command.
var Cmd = &cobra.Command{
	Use:   "extract <file>",
	Short: "Extract structured fields from a scanned invoice or receipt.",
	Long: `Extract runs the multi-pass extraction pipeline on a single document
and prints the structured result as JSON.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		filePath := args[0]

		fileBytes, err := os.ReadFile(filePath)
		if err != nil {
			return fmt.Errorf("reading %s: %w", filePath, err)
		}

		c, err := container.NewContainer(cmd.Context(), root.Cfg)
		if err != nil {
			return err
		}
		defer func() { _ = c.Close() }()

		result, err := c.Extractor().Extract(cmd.Context(), fileBytes, mimeTypeFor(filePath), extractor.Options{
			CompanyName: companyName,
		})
		if err != nil {
			return err
		}

		out, err := json.MarshalIndent(result, "", "  ")
		if err != nil {
			return fmt.Errorf("encoding result: %w", err)
		}
		fmt.Println(string(out))
		return nil
	},
}

func init() {
	Cmd.Flags().StringVarP(&companyName, "company", "c", "", "Name of the receiving company (helps vendor identification)")
}

// mimeTypeFor infers the attachment MIME type from the file extension.
func mimeTypeFor(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".pdf":
		return "application/pdf"
	case ".png":
		return "image/png"
	case ".jpg", ".jpeg":
		return "image/jpeg"
	case ".webp":
		return "image/webp"
	default:
		return "application/octet-stream"
	}
}
