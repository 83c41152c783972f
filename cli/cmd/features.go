// ABOUTME: Features command for the laptop-price CLI
// ABOUTME: Lists the valid option set and input constraints for specifications

package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/pricewise/laptop-price-api/cli/client"
	"github.com/pricewise/laptop-price-api/cli/styles"
	"github.com/pricewise/laptop-price-api/models"
)

var featuresCmd = &cobra.Command{
	Use:   "features",
	Short: "List valid specification options",
	Long:  `Fetch the categorical option set and numeric constraints accepted by the predict endpoint.`,
	Run: func(cmd *cobra.Command, args []string) {
		ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer cancel()

		exitCode := runFeatures(ctx, os.Stdout)
		if exitCode != 0 {
			os.Exit(exitCode)
		}
	},
}

func init() {
	rootCmd.AddCommand(featuresCmd)
}

// runFeatures fetches and prints the feature options and returns exit code
func runFeatures(ctx context.Context, w io.Writer) int {
	c := client.New(GetAPIURL())

	resp, err := c.Features(ctx)
	if err != nil {
		fmt.Fprintf(w, "Error: %v\n", err)
		return 2
	}

	if IsJSONOutput() {
		data, _ := json.MarshalIndent(resp, "", "  ")
		fmt.Fprintln(w, string(data))
	} else {
		fmt.Fprintln(w, formatFeaturesHuman(resp))
	}

	return 0
}

// formatFeaturesHuman formats the option set for human readability
func formatFeaturesHuman(resp *models.FeaturesResponse) string {
	var sb strings.Builder

	writeList := func(label string, values []string) {
		sb.WriteString(styles.Label.Render(label+":") + " " + strings.Join(values, ", ") + "\n")
	}

	writeList("Companies", resp.Options.Companies)
	writeList("Types", resp.Options.TypeNames)
	writeList("CPU brands", resp.Options.CPUBrands)
	writeList("GPU brands", resp.Options.GPUBrands)
	writeList("Operating systems", resp.Options.OperatingSystems)
	writeList("Resolutions", resp.Constraints.Resolutions)

	sb.WriteString(styles.Label.Render("RAM (GB):") + " " + joinInts(resp.Constraints.RAMOptions) + "\n")
	sb.WriteString(styles.Label.Render("HDD (GB):") + " " + joinInts(resp.Constraints.HDDOptions) + "\n")
	sb.WriteString(styles.Label.Render("SSD (GB):") + " " + joinInts(resp.Constraints.SSDOptions) + "\n")
	sb.WriteString(styles.Label.Render("Screen size:") + " " +
		fmt.Sprintf("%g to %g inches", resp.Constraints.ScreenSizeMin, resp.Constraints.ScreenSizeMax) + "\n")
	sb.WriteString(styles.Label.Render("Weight:") + " " +
		fmt.Sprintf("%g to %g kg", resp.Constraints.WeightMin, resp.Constraints.WeightMax))

	return sb.String()
}

func joinInts(values []int) string {
	parts := make([]string, 0, len(values))
	for _, v := range values {
		parts = append(parts, fmt.Sprintf("%d", v))
	}
	return strings.Join(parts, ", ")
}
