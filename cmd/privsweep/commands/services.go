package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/privsweep/privsweep/internal/provider/aws"
)

var servicesCmd = &cobra.Command{
	Use:   "services",
	Short: "List scannable services and regions",
	Long:  "Print the service catalog and partition regions. Works offline, no credentials needed.",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("SERVICES")
		for _, name := range aws.SupportedServices() {
			scope := "regional"
			if aws.IsGlobal(name) {
				scope = "global"
			}
			fmt.Printf("  %-24s %s\n", name, scope)
		}
		fmt.Println("\nREGIONS")
		fmt.Printf("  %s\n", strings.Join(aws.PartitionRegions(), ", "))
	},
}

func init() {
	rootCmd.AddCommand(servicesCmd)
}
