package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"healthcare-optimizer/domain"
	"healthcare-optimizer/service"
)

func newEvaluateCommand() *cobra.Command {
	in := service.DefaultDashboardInput()
	var output string

	cmd := &cobra.Command{
		Use:   "evaluate",
		Short: "Evaluate the dashboard for the given inputs and print the result",
		RunE: func(cmd *cobra.Command, args []string) error {
			svc := service.NewDashboardService(service.NewAnalyticsService(nil, nil), nil)
			d, err := svc.Evaluate(cmd.Context(), in)
			if err != nil {
				return err
			}
			return writeReport(cmd.OutOrStdout(), d, output)
		},
	}

	f := cmd.Flags()
	f.IntVar(&in.Operations.NumDoctors, "doctors", in.Operations.NumDoctors, "number of doctors")
	f.IntVar(&in.Operations.PatientsPerHour, "patients-per-hour", in.Operations.PatientsPerHour, "patients arriving per hour")
	f.IntVar(&in.Operations.ConsultMinutes, "consult-minutes", in.Operations.ConsultMinutes, "average consultation time in minutes")
	f.IntVar(&in.Operations.NumBeds, "beds", in.Operations.NumBeds, "available beds")
	f.IntVar(&in.Operations.Shifts, "shifts", in.Operations.Shifts, "staff shifts")
	f.Float64Var(&in.ROI.Investment, "investment", in.ROI.Investment, "total investment")
	f.Float64Var(&in.ROI.AnnualSavings, "annual-savings", in.ROI.AnnualSavings, "expected annual savings")
	f.IntVar(&in.ROI.Years, "years", in.ROI.Years, "ROI time period in years")
	f.IntVar(&in.SixSigma.DefectsPer1000, "defects", in.SixSigma.DefectsPer1000, "defects observed per 1,000 patients")
	f.StringVarP(&output, "output", "o", "yaml", "output format: yaml or json")

	return cmd
}

func writeReport(w io.Writer, d domain.Dashboard, format string) error {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(d)
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(d); err != nil {
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("unknown output format %q (want yaml or json)", format)
	}
}
