package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	rectpart "github.com/arl/go-rectpart"
)

// infosCmd represents the infos command
var infosCmd = &cobra.Command{
	Use:   "infos INFILE",
	Short: "show infos about a rectilinear polygon",
	Long: `Read a rectilinear polygon from INFILE (YAML), check it for
consistency then print informations on standard output.`,
	Run: doInfos,
}

func init() {
	RootCmd.AddCommand(infosCmd)
}

func doInfos(cmd *cobra.Command, args []string) {
	if len(args) < 1 {
		check(fmt.Errorf("missing INFILE argument"))
	}
	check(fileExists(args[0]))

	poly, err := readPolygonFile(args[0])
	check(err)

	concave, err := poly.ConcaveCount()
	check(err)

	rects, err := rectpart.Partition(poly)
	check(err)

	fmt.Printf("polygon     '%s'\n", args[0])
	fmt.Printf("vertices    %d\n", len(poly))
	fmt.Printf("concave     %d\n", concave)
	fmt.Printf("area        %d\n", poly.Area())
	fmt.Printf("rectangles  %d\n", len(rects))
}
