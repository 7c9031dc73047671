package cmd

import (
	"fmt"
	"io"
	"mime"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"healthcare-file-viewer/internal/models"
	"healthcare-file-viewer/internal/utils"
	"healthcare-file-viewer/internal/viewer"
)

type renderOptions struct {
	fileName    string
	fileType    string
	title       string
	description string
	bill        string
	inlineFile  string
	out         string
}

var renderOpts renderOptions

// renderCmd writes the preview modal for one descriptor as an HTML fragment.
var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Render the preview modal for a descriptor",
	Long: `Render the preview modal for a single descriptor to stdout or a file.

Examples:
  # Lab report placeholder with a bill
  file-viewer render --file-name cbc.txt --file-type LAB --title "CBC" --bill invoice.pdf

  # Inline a local scan as the preview payload
  file-viewer render --file-name knee.dcm --file-type DICOM --inline-file knee.png --out knee.html`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runRender(cmd.OutOrStdout(), renderOpts)
	},
}

func init() {
	rootCmd.AddCommand(renderCmd)

	f := renderCmd.Flags()
	f.StringVar(&renderOpts.fileName, "file-name", "", "File name shown in the modal (required)")
	f.StringVar(&renderOpts.fileType, "file-type", "", "Declared file type: PDF, DICOM or LAB (required)")
	f.StringVar(&renderOpts.title, "title", "", "Record title")
	f.StringVar(&renderOpts.description, "description", "", "Record description")
	f.StringVar(&renderOpts.bill, "bill", "", "Associated bill file name")
	f.StringVar(&renderOpts.inlineFile, "inline-file", "", "Local file embedded as the inline payload")
	f.StringVar(&renderOpts.out, "out", "", "Write to this file instead of stdout")
	renderCmd.MarkFlagRequired("file-name")
	renderCmd.MarkFlagRequired("file-type")
}

func runRender(stdout io.Writer, opts renderOptions) error {
	fileType, err := viewer.ParseFileType(opts.fileType)
	if err != nil {
		return err
	}

	desc := viewer.Descriptor{
		FileName:     opts.fileName,
		FileType:     fileType,
		Title:        opts.title,
		Description:  opts.description,
		BillFileName: opts.bill,
	}
	if opts.inlineFile != "" {
		data, err := os.ReadFile(opts.inlineFile)
		if err != nil {
			return fmt.Errorf("read inline file: %w", err)
		}
		desc.InlineData = models.EncodeDataURI(data, mime.TypeByExtension(filepath.Ext(opts.inlineFile)))
	}
	if err := utils.Validate(desc); err != nil {
		return fmt.Errorf("invalid descriptor: %s", utils.FormatValidationError(err))
	}

	modal := viewer.Open(desc, nil)
	if opts.out == "" {
		return modal.Render(stdout)
	}

	f, err := os.Create(opts.out)
	if err != nil {
		return fmt.Errorf("create output: %w", err)
	}
	if err := modal.Render(f); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close output: %w", err)
	}
	return nil
}
