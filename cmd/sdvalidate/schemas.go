package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/structured-data-validator/internal/registry"
	"github.com/jonathan/structured-data-validator/internal/schemas"
)

var schemasCmd = &cobra.Command{
	Use:   "schemas",
	Short: "Inspect the curated schema definitions",
}

var schemasListCmd = &cobra.Command{
	Use:   "list",
	Short: "List every supported type with its documentation URL",
	RunE: func(cmd *cobra.Command, _ []string) error {
		return listSchemas(cmd.OutOrStdout(), registry.Default())
	},
}

var schemasExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export a type as a draft-07 JSON Schema",
	RunE:  runSchemasExport,
}

var schemasCheckCmd = &cobra.Command{
	Use:   "check FILE",
	Short: "Check a JSON document against the exported JSON Schema of a type",
	Args:  cobra.ExactArgs(1),
	RunE:  runSchemasCheck,
}

var schemasVerifyCmd = &cobra.Command{
	Use:   "verify FILE",
	Short: "Verify saved validate output against the published result schema",
	Args:  cobra.ExactArgs(1),
	RunE:  runSchemasVerify,
}

var (
	exportType  string
	exportOut   string
	checkType   string
	verifyBatch bool
)

func init() {
	schemasExportCmd.Flags().StringVarP(&exportType, "type", "t", "", "Type name to export (required)")
	schemasExportCmd.Flags().StringVarP(&exportOut, "out", "o", "", "Output file (default stdout)")
	schemasCheckCmd.Flags().StringVarP(&checkType, "type", "t", "", "Type whose exported schema is used (required)")
	schemasVerifyCmd.Flags().BoolVar(&verifyBatch, "batch", false, "The file holds HTML batch output")

	for _, cmd := range []*cobra.Command{schemasExportCmd, schemasCheckCmd} {
		if err := cmd.MarkFlagRequired("type"); err != nil {
			panic(fmt.Sprintf("failed to mark type flag as required: %v", err))
		}
	}

	schemasCmd.AddCommand(schemasListCmd, schemasExportCmd, schemasCheckCmd, schemasVerifyCmd)
	rootCmd.AddCommand(schemasCmd)
}

//nolint:errcheck // writing to stdout; errors are not recoverable
func listSchemas(w io.Writer, reg *registry.Registry) error {
	for _, name := range reg.Names() {
		def, ok := reg.Lookup(name)
		if !ok {
			continue
		}
		fmt.Fprintf(w, "%-22s %s\n", def.Name, def.DocURL)
	}
	return nil
}

func exportSchema(reg *registry.Registry, typeName string) ([]byte, error) {
	def, ok := reg.Lookup(typeName)
	if !ok {
		return nil, fmt.Errorf("unknown type %q (see 'sdvalidate schemas list')", typeName)
	}
	data, err := schemas.ExportJSON(def)
	if err != nil {
		return nil, fmt.Errorf("failed to export %s: %w", typeName, err)
	}
	return append(data, '\n'), nil
}

func runSchemasExport(cmd *cobra.Command, _ []string) error {
	data, err := exportSchema(registry.Default(), exportType)
	if err != nil {
		return err
	}

	if exportOut == "" {
		_, err = cmd.OutOrStdout().Write(data)
		return err
	}
	if err := os.WriteFile(exportOut, data, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", exportOut, err)
	}
	fmt.Fprintf(cmd.ErrOrStderr(), "Exported %s to %s\n", exportType, exportOut)
	return nil
}

// checkDocument validates content with gojsonschema against the exported schema of typeName.
func checkDocument(reg *registry.Registry, typeName, content string) error {
	exported, err := exportSchema(reg, typeName)
	if err != nil {
		return err
	}
	return schemas.ValidateJSONString(string(exported), content)
}

func runSchemasCheck(cmd *cobra.Command, args []string) error {
	content, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", args[0], err)
	}
	if err := checkDocument(registry.Default(), checkType, string(content)); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%s conforms to the exported %s schema\n", args[0], checkType)
	return nil
}

// verifyOutput checks a file written by validate against the result or batch schema.
func verifyOutput(path string, batch bool) error {
	schemaPath := schemas.ResultSchemaPath
	if batch {
		schemaPath = schemas.BatchResultSchemaPath
	}
	resolved := schemas.ResolveSchemaPath(schemaPath)
	if resolved == "" {
		return fmt.Errorf("schema %s not found", schemaPath)
	}
	return schemas.ValidateJSON(resolved, path)
}

func runSchemasVerify(cmd *cobra.Command, args []string) error {
	if err := verifyOutput(args[0], verifyBatch); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%s matches the published schema\n", args[0])
	return nil
}
