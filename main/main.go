package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/sgostarter/i/l"

	"github.com/phil-mansfield/curves/catalog"
	"github.com/phil-mansfield/curves/io"
)

func main() {
	// Each mode is selected by a flag pointing at a [Catalog] config file.
	// Positional arguments are interpreted by the mode.

	var (
		list, eval, importStr string
		exampleConfig         string
	)
	vars := map[string]*string{
		"List":          &list,
		"Eval":          &eval,
		"Import":        &importStr,
		"ExampleConfig": &exampleConfig,
	}

	flag.StringVar(
		&list, "List", "",
		"Configuration file for [List] mode, which prints every curve whose "+
			"interpolation mode is selected by the config's 'Mode' values.",
	)
	flag.StringVar(
		&eval, "Eval", "",
		"Configuration file for [Eval] mode. Takes a curve ID followed by "+
			"the x values to evaluate it at.",
	)
	flag.StringVar(
		&importStr, "Import", "",
		"Configuration file for [Import] mode. Takes the name of a SQLite "+
			"database which the catalog is copied into.",
	)
	flag.StringVar(
		&exampleConfig, "ExampleConfig", "",
		"Prints an example configuration file of the specified type to "+
			"stdout. The only accepted argument is 'Catalog'.",
	)

	flag.Parse()

	modeName, err := getModeName(vars)
	if err != nil {
		log.Fatal(err.Error())
	}

	if modeName == "ExampleConfig" {
		if !strings.EqualFold(exampleConfig, "Catalog") {
			log.Fatalf("Unrecognized config type '%s'.", exampleConfig)
		}
		fmt.Println(io.ExampleCatalogFile)
		return
	}

	con, err := io.ReadCatalogConfig(*vars[modeName])
	if err != nil {
		log.Fatal(err.Error())
	}

	if con.ValidLogFile() {
		lf, err := os.Create(con.LogFile)
		if err != nil {
			log.Fatal(err.Error())
		}
		defer lf.Close()
		log.SetOutput(lf)
	}

	cat, err := loadCatalog(con, l.NewConsoleLoggerWrapper())
	if err != nil {
		log.Fatal(err.Error())
	}
	log.Printf("Loaded %d curves.", cat.Len())

	switch modeName {
	case "List":
		err = listMain(con, cat)
	case "Eval":
		err = evalMain(cat, flag.Args())
	case "Import":
		err = importMain(cat, flag.Args())
	}
	if err != nil {
		log.Fatal(err.Error())
	}
}

func getModeName(vars map[string]*string) (string, error) {
	setNames := []string{}

	for name, varPtr := range vars {
		if *varPtr != "" {
			setNames = append(setNames, name)
		}
	}

	if len(setNames) == 0 {
		return "", fmt.Errorf("No flags have been set.")
	}

	if len(setNames) > 1 {
		return "", fmt.Errorf(
			"The following flags were set: %s, but curves "+
				"only accepts one flag at a time.",
			strings.Join(setNames, ", "),
		)
	}

	return setNames[0], nil
}

// loadCatalog reads the catalog described by con.
func loadCatalog(con *io.CatalogConfig, logger l.Wrapper) (*catalog.Catalog, error) {
	if con.IsTable() {
		return catalog.Load(con.TableSource(), logger)
	}

	store, err := catalog.OpenStore(con.Database)
	if err != nil {
		return nil, err
	}
	defer store.Close()
	return catalog.Load(store, logger)
}

// listMain prints the curves selected by the config's modes, smallest first.
func listMain(con *io.CatalogConfig, cat *catalog.Catalog) error {
	mask, err := con.Modes()
	if err != nil {
		return err
	}
	for _, c := range cat.Select(mask) {
		fmt.Printf("%s %s\n", c, c.Mode())
	}
	return nil
}

// evalMain prints "x y" rows for a single curve.
func evalMain(cat *catalog.Catalog, args []string) error {
	id, xs, err := parseEvalArgs(args)
	if err != nil {
		return err
	}

	c, ok := cat.Get(id)
	if !ok {
		return fmt.Errorf("No curve with ID %d in catalog.", id)
	}

	ys, err := c.EvalAll(xs)
	if err != nil {
		return err
	}
	for i := range xs {
		fmt.Printf("%g %g\n", xs[i], ys[i])
	}
	return nil
}

func parseEvalArgs(args []string) (id int, xs []float32, err error) {
	if len(args) < 2 {
		return 0, nil, fmt.Errorf(
			"Eval mode needs a curve ID and at least one x value.",
		)
	}

	id, err = strconv.Atoi(args[0])
	if err != nil {
		return 0, nil, fmt.Errorf("Invalid curve ID '%s'.", args[0])
	}

	xs = make([]float32, len(args)-1)
	for i, arg := range args[1:] {
		x, err := strconv.ParseFloat(arg, 32)
		if err != nil {
			return 0, nil, fmt.Errorf("Invalid x value '%s'.", arg)
		}
		xs[i] = float32(x)
	}
	return id, xs, nil
}

// importMain copies the catalog into a SQLite database.
func importMain(cat *catalog.Catalog, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("Import mode needs exactly one output database.")
	}

	store, err := catalog.OpenStore(args[0])
	if err != nil {
		return err
	}
	defer store.Close()

	curves, points := cat.Records()
	if err := store.Put(curves, points); err != nil {
		return err
	}
	log.Printf("Wrote %d curves and %d points to %s.",
		len(curves), len(points), args[0])
	return nil
}
