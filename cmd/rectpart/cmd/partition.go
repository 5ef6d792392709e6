package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	rectpart "github.com/arl/go-rectpart"
)

// partitionCmd represents the partition command
var partitionCmd = &cobra.Command{
	Use:   "partition INFILE",
	Short: "partition a rectilinear polygon into rectangles",
	Long: `Read a rectilinear polygon from INFILE (YAML) and decompose it
into the minimum number of axis-aligned rectangles. Rectangles are
printed on standard output, or written to a YAML file with --out.`,
	Run: doPartition,
}

var (
	outVal     string
	forceVal   bool
	verboseVal bool
)

func init() {
	RootCmd.AddCommand(partitionCmd)

	partitionCmd.Flags().StringVar(&outVal, "out", "", "write rectangles to this YAML file")
	partitionCmd.Flags().BoolVarP(&forceVal, "force", "f", false, "overwrite the --out file without asking")
	partitionCmd.Flags().BoolVarP(&verboseVal, "verbose", "v", false, "log pipeline progress and timings")
}

func doPartition(cmd *cobra.Command, args []string) {
	if len(args) < 1 {
		check(fmt.Errorf("missing INFILE argument"))
	}
	check(fileExists(args[0]))

	poly, err := readPolygonFile(args[0])
	check(err)

	ctx := rectpart.NewBuildContext(verboseVal)
	rects, err := rectpart.PartitionContext(ctx, poly)
	if verboseVal {
		dumpRun(args[0], ctx)
	}
	check(err)

	if outVal == "" {
		for _, r := range rects {
			fmt.Println(r)
		}
		return
	}

	ok, err := overwriteAllowed(outVal)
	check(err)
	if !ok {
		fmt.Println("nothing written")
		return
	}
	check(writeRectanglesFile(outVal, rects))
	fmt.Printf("%d rectangles written to '%s'\n", len(rects), outVal)
}

// dumpRun prints the messages and stage timings recorded while
// partitioning path.
func dumpRun(path string, ctx *rectpart.BuildContext) {
	fmt.Printf("partition run %s:\n", path)
	for _, msg := range ctx.Messages() {
		fmt.Println("  " + msg)
	}
	for s := rectpart.StageVertices; s <= rectpart.StageFaces; s++ {
		fmt.Printf("  %-12s %v\n", s, ctx.Elapsed(s))
	}
	fmt.Printf("  %-12s %v\n", "total", ctx.Total())
}

// overwriteAllowed reports whether the rectangles file at path may be
// written: the path is still free, --force was given, or the user
// accepted the overwrite.
func overwriteAllowed(path string) (bool, error) {
	_, err := os.Stat(path)
	if os.IsNotExist(err) {
		return true, nil
	}
	if err != nil {
		return false, err
	}
	if forceVal {
		return true, nil
	}

	fmt.Printf("'%s' already exists, replace it with the new rectangles? [y/N] ", path)
	sc := bufio.NewScanner(os.Stdin)
	if !sc.Scan() {
		return false, sc.Err()
	}
	switch strings.ToLower(strings.TrimSpace(sc.Text())) {
	case "y", "yes":
		return true, nil
	}
	return false, nil
}
