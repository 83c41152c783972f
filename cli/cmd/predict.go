// ABOUTME: Predict command for the laptop-price CLI
// ABOUTME: Collects a specification via form or flags and renders the estimated price

package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/pricewise/laptop-price-api/cli/client"
	"github.com/pricewise/laptop-price-api/cli/form"
	"github.com/pricewise/laptop-price-api/cli/styles"
	"github.com/pricewise/laptop-price-api/models"
)

var predictFlags struct {
	company     string
	typeName    string
	ram         int
	weight      float64
	touchscreen string
	ips         string
	screenSize  float64
	resolution  string
	cpu         string
	hdd         int
	ssd         int
	gpu         string
	os          string
}

// specFlagNames are the flags that switch predict into non-interactive mode
var specFlagNames = []string{
	"company", "type", "ram", "weight", "touchscreen", "ips",
	"screen-size", "resolution", "cpu", "hdd", "ssd", "gpu", "os",
}

var predictCmd = &cobra.Command{
	Use:   "predict",
	Short: "Predict the price of a laptop",
	Long: `Predict the price of a laptop from its specifications.

Without flags this opens an interactive form constrained by the options the
backend serves. With any specification flag set the form is skipped and the
flag values are submitted directly.`,
	Run: func(cmd *cobra.Command, args []string) {
		ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer cancel()

		exitCode := runPredict(ctx, cmd, os.Stdout)
		if exitCode != 0 {
			os.Exit(exitCode)
		}
	},
}

func init() {
	f := predictCmd.Flags()
	f.StringVar(&predictFlags.company, "company", "", "Manufacturer (e.g., Dell)")
	f.StringVar(&predictFlags.typeName, "type", "", "Laptop type (e.g., Notebook)")
	f.IntVar(&predictFlags.ram, "ram", 0, "RAM in GB")
	f.Float64Var(&predictFlags.weight, "weight", 0, "Weight in kg")
	f.StringVar(&predictFlags.touchscreen, "touchscreen", "No", "Touchscreen (Yes or No)")
	f.StringVar(&predictFlags.ips, "ips", "No", "IPS panel (Yes or No)")
	f.Float64Var(&predictFlags.screenSize, "screen-size", 0, "Screen size in inches")
	f.StringVar(&predictFlags.resolution, "resolution", "", "Screen resolution (e.g., 1920x1080)")
	f.StringVar(&predictFlags.cpu, "cpu", "", "CPU brand (e.g., Intel Core i5)")
	f.IntVar(&predictFlags.hdd, "hdd", 0, "HDD capacity in GB")
	f.IntVar(&predictFlags.ssd, "ssd", 0, "SSD capacity in GB")
	f.StringVar(&predictFlags.gpu, "gpu", "", "GPU brand (e.g., Intel)")
	f.StringVar(&predictFlags.os, "os", "", "Operating system (e.g., Windows)")

	rootCmd.AddCommand(predictCmd)
}

// runPredict resolves the specification, submits it, and returns exit code
func runPredict(ctx context.Context, cmd *cobra.Command, w io.Writer) int {
	c := client.New(GetAPIURL())

	var spec models.LaptopSpec
	if anySpecFlagSet(cmd) {
		spec = specFromFlags(cmd)
	} else {
		collected, ok, err := collectSpec(ctx, c)
		if err != nil {
			fmt.Fprintf(w, "Error: %v\n", err)
			return 2
		}
		if !ok {
			fmt.Fprintln(w, "Cancelled.")
			return 1
		}
		spec = collected
	}

	resp, err := c.Predict(ctx, spec)
	if err != nil {
		fmt.Fprintln(w, styles.Error.Render(fmt.Sprintf("Error: %v", err)))
		return 2
	}

	if IsJSONOutput() {
		data, _ := json.MarshalIndent(resp, "", "  ")
		fmt.Fprintln(w, string(data))
	} else {
		fmt.Fprintln(w, formatPredictionHuman(resp))
	}

	return 0
}

func anySpecFlagSet(cmd *cobra.Command) bool {
	for _, name := range specFlagNames {
		if cmd.Flags().Changed(name) {
			return true
		}
	}
	return false
}

// specFromFlags builds a specification from flag values. Unset numeric flags
// stay nil so the backend reports them as missing instead of zero.
func specFromFlags(cmd *cobra.Command) models.LaptopSpec {
	spec := models.LaptopSpec{
		Company:     predictFlags.company,
		TypeName:    predictFlags.typeName,
		Touchscreen: predictFlags.touchscreen,
		IPS:         predictFlags.ips,
		Resolution:  predictFlags.resolution,
		CPU:         predictFlags.cpu,
		GPU:         predictFlags.gpu,
		OS:          predictFlags.os,
		HDD:         &predictFlags.hdd,
		SSD:         &predictFlags.ssd,
	}
	if cmd.Flags().Changed("ram") {
		spec.RAM = &predictFlags.ram
	}
	if cmd.Flags().Changed("weight") {
		spec.Weight = &predictFlags.weight
	}
	if cmd.Flags().Changed("screen-size") {
		spec.ScreenSize = &predictFlags.screenSize
	}
	return spec
}

// collectSpec fetches the option set and runs the interactive form
func collectSpec(ctx context.Context, c *client.Client) (models.LaptopSpec, bool, error) {
	features, err := c.Features(ctx)
	if err != nil {
		return models.LaptopSpec{}, false, err
	}

	model := form.New(features)
	final, err := tea.NewProgram(model, tea.WithContext(ctx)).Run()
	if err != nil {
		return models.LaptopSpec{}, false, err
	}

	m, ok := final.(*form.Model)
	if !ok || !m.Done() {
		return models.LaptopSpec{}, false, nil
	}
	return m.Spec(), true, nil
}

// formatPredictionHuman renders the prediction with the input it echoes
func formatPredictionHuman(resp *models.PredictionResponse) string {
	s := resp.Specifications
	price := styles.Price.Render(fmt.Sprintf("%.2f %s", resp.PredictedPrice, resp.Currency))

	detail := fmt.Sprintf(`%s %s
RAM %d GB, HDD %d GB, SSD %d GB
%.1f" %s, touchscreen %s, IPS %s
%s CPU, %s GPU, %s, %.2f kg`,
		s.Company, s.TypeName,
		derefInt(s.RAM), derefInt(s.HDD), derefInt(s.SSD),
		derefFloat(s.ScreenSize), s.Resolution, s.Touchscreen, s.IPS,
		s.CPU, s.GPU, s.OS, derefFloat(s.Weight))

	return styles.Panel.Render(
		styles.Title.Render("Estimated Price") + "\n" +
			price + "\n\n" +
			styles.Label.Render(detail))
}

func derefInt(v *int) int {
	if v == nil {
		return 0
	}
	return *v
}

func derefFloat(v *float64) float64 {
	if v == nil {
		return 0
	}
	return *v
}
