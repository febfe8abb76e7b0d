package main

import (
	"fmt"
	"log"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/kass/go-iso6709/pkg/coord"
	"github.com/kass/go-iso6709/pkg/index"
	"github.com/kass/go-iso6709/pkg/iso6709"
	"github.com/kass/go-iso6709/pkg/store"
)

var (
	okStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#50FA7B"))
	dimStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#6272A4"))
)

var rootCmd = &cobra.Command{
	Use:   "geo6709",
	Short: "ISO 6709 coordinate codec toolbox",
	Long:  `Convert geographic coordinates between ISO 6709 records and human-readable sexagesimal forms, and query coordinate lists.`,
}

var parseCmd = &cobra.Command{
	Use:   "parse [record...]",
	Short: "Decode ISO 6709 records to a display form",
	Args:  cobra.MinimumNArgs(1),
	Run:   runParse,
}

var formatCmd = &cobra.Command{
	Use:   "format",
	Short: "Encode decimal degrees at a chosen precision",
	Run:   runFormat,
}

var distanceCmd = &cobra.Command{
	Use:   "distance <record> <record>",
	Short: "Great-circle distance between two ISO 6709 records",
	Args:  cobra.ExactArgs(2),
	Run:   runDistance,
}

var convertCmd = &cobra.Command{
	Use:   "convert",
	Short: "Convert a YAML waypoint file to an ISO 6709 list file",
	Run:   runConvert,
}

var nearCmd = &cobra.Command{
	Use:   "near",
	Short: "Find list entries within a radius of a point",
	Run:   runNear,
}

var (
	precision string
	lat, lon  float64
	inFile    string
	outFile   string
	listFile  string
	atRecord  string
	radiusKm  float64
)

func init() {
	parseCmd.Flags().StringVarP(&precision, "precision", "p", "DMS", "Display precision: D, DM, DMS or ISO")

	formatCmd.Flags().Float64Var(&lat, "lat", 0, "Latitude in signed decimal degrees")
	formatCmd.Flags().Float64Var(&lon, "lon", 0, "Longitude in signed decimal degrees")
	formatCmd.Flags().StringVarP(&precision, "precision", "p", "ISO", "Output precision: D, DM, DMS or ISO")

	convertCmd.Flags().StringVarP(&inFile, "in", "i", "waypoints.yaml", "YAML waypoint file")
	convertCmd.Flags().StringVarP(&outFile, "out", "o", "route.iso", "Output ISO 6709 list file")

	nearCmd.Flags().StringVarP(&listFile, "file", "f", "route.iso", "ISO 6709 list file")
	nearCmd.Flags().StringVar(&atRecord, "at", "", "Center point as an ISO 6709 record")
	nearCmd.Flags().Float64VarP(&radiusKm, "radius", "r", 50.0, "Search radius in km")

	rootCmd.AddCommand(parseCmd, formatCmd, distanceCmd, convertCmd, nearCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// styled colors output when stdout is a terminal and stays plain when piped.
func styled(style lipgloss.Style, s string) string {
	if !isatty.IsTerminal(os.Stdout.Fd()) {
		return s
	}
	return style.Render(s)
}

func runParse(cmd *cobra.Command, args []string) {
	for _, record := range args {
		c, err := iso6709.Parse(record)
		if err != nil {
			log.Fatalf("Failed to parse %q: %v", record, err)
		}
		display, err := iso6709.Format(c, iso6709.Precision(precision))
		if err != nil {
			log.Fatalf("Failed to format: %v", err)
		}
		fmt.Printf("%s  %s\n", styled(dimStyle, record), styled(okStyle, display))
	}
}

func runFormat(cmd *cobra.Command, args []string) {
	c := coord.New(lat, lon)
	if !c.Valid() {
		log.Fatalf("Coordinate out of range: lat %.4f, lon %.4f", lat, lon)
	}
	display, err := iso6709.Format(c, iso6709.Precision(precision))
	if err != nil {
		log.Fatalf("Failed to format: %v", err)
	}
	fmt.Println(styled(okStyle, display))
}

func runDistance(cmd *cobra.Command, args []string) {
	a, err := iso6709.Parse(args[0])
	if err != nil {
		log.Fatalf("Failed to parse %q: %v", args[0], err)
	}
	b, err := iso6709.Parse(args[1])
	if err != nil {
		log.Fatalf("Failed to parse %q: %v", args[1], err)
	}

	meters := coord.Distance(a, b)
	fmt.Printf("%s (%s)\n",
		styled(okStyle, fmt.Sprintf("%.1f m", meters)),
		styled(dimStyle, fmt.Sprintf("%.3f km", meters/1000)))
}

// waypointFile is the YAML shape accepted by the convert command.
type waypointFile struct {
	Waypoints []struct {
		Name string  `yaml:"name"`
		Lat  float64 `yaml:"lat"`
		Lon  float64 `yaml:"lon"`
	} `yaml:"waypoints"`
}

func runConvert(cmd *cobra.Command, args []string) {
	payload, err := os.ReadFile(inFile)
	if err != nil {
		log.Fatalf("Failed to read %s: %v", inFile, err)
	}

	var wf waypointFile
	if err := yaml.Unmarshal(payload, &wf); err != nil {
		log.Fatalf("Failed to decode %s: %v", inFile, err)
	}

	list := make(coord.List, 0, len(wf.Waypoints))
	for _, wp := range wf.Waypoints {
		c := coord.New(wp.Lat, wp.Lon)
		if !c.Valid() {
			log.Fatalf("Waypoint %q out of range: lat %.4f, lon %.4f", wp.Name, wp.Lat, wp.Lon)
		}
		list = append(list, c)
	}

	if err := store.NewFileStore(outFile).Save(list); err != nil {
		log.Fatalf("Failed to save: %v", err)
	}
	fmt.Printf("Wrote %d records to %s\n", len(list), outFile)
}

func runNear(cmd *cobra.Command, args []string) {
	center, err := iso6709.Parse(atRecord)
	if err != nil {
		log.Fatalf("Failed to parse --at record: %v", err)
	}

	list, err := store.NewFileStore(listFile).Load()
	if err != nil {
		log.Fatalf("Failed to load %s: %v", listFile, err)
	}

	idx := index.FromList(list)
	results, err := idx.SearchRadius(center, radiusKm*1000)
	if err != nil {
		log.Fatalf("Radius search failed: %v", err)
	}

	fmt.Printf("Found %d of %d records within %.1f km:\n", len(results), idx.Size(), radiusKm)
	for _, e := range results {
		display, err := iso6709.Format(e.Coord, iso6709.PrecisionDMS)
		if err != nil {
			log.Fatalf("Failed to format: %v", err)
		}
		km := coord.Distance(center, e.Coord) / 1000
		fmt.Printf("  #%s %s %s\n", e.ID, styled(okStyle, display), styled(dimStyle, fmt.Sprintf("(%.1f km)", km)))
	}
}
