package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"math/rand"
	"os"
	"sort"

	"psymetric/internal/domain"
	"psymetric/internal/itembank"
	"psymetric/internal/scoring"
)

const (
	colorGreen = "\033[32m"
	colorCyan  = "\033[36m"
	colorReset = "\033[0m"
)

// responsesFile es el formato de entrada: tres mapas item_id -> valor, cada
// uno opcional, más la política de faltantes.
type responsesFile struct {
	Trait  domain.ResponseSet `json:"trait"`
	Type   domain.ResponseSet `json:"type"`
	Style  domain.ResponseSet `json:"style"`
	Policy string             `json:"policy"`
}

func main() {
	bankPath := flag.String("bank", "", "ruta a un banco de ítems JSON (vacío usa el embebido)")
	inputPath := flag.String("responses", "", "ruta a un JSON de respuestas (vacío genera un set aleatorio)")
	seed := flag.Int64("seed", 1, "semilla para el set generado")
	flag.Parse()

	bank := itembank.Default()
	if *bankPath != "" {
		loaded, err := itembank.LoadFile(*bankPath)
		if err != nil {
			log.Fatalf("item bank load failed: %v", err)
		}
		bank = loaded
	}
	engine := scoring.NewEngine(bank, scoring.DefaultNorms())
	fmt.Printf("%s[Bank]%s %s\n\n", colorCyan, colorReset, bank.Version())

	input := generateResponses(bank, rand.New(rand.NewSource(*seed)))
	if *inputPath != "" {
		loaded, err := loadResponses(*inputPath)
		if err != nil {
			log.Fatalf("responses load failed: %v", err)
		}
		input = loaded
	}
	policy, err := scoring.ParsePolicy(input.Policy)
	if err != nil {
		log.Fatal(err)
	}

	var (
		trait *domain.TraitScoreResult
		typ   *domain.TypeCode
		style *domain.StyleProfile
	)
	if input.Trait != nil {
		if trait, err = engine.ScoreTrait(input.Trait, policy); err != nil {
			log.Fatalf("trait scoring failed: %v", err)
		}
	}
	if input.Type != nil {
		if typ, err = engine.ScoreType(input.Type); err != nil {
			log.Fatalf("type scoring failed: %v", err)
		}
	}
	if input.Style != nil {
		if style, err = engine.ScoreStyle(input.Style, policy); err != nil {
			log.Fatalf("style scoring failed: %v", err)
		}
	}

	report := engine.Assemble(trait, typ, style)
	printReport(report)
}

func loadResponses(path string) (responsesFile, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return responsesFile{}, err
	}
	var rf responsesFile
	if err := json.Unmarshal(raw, &rf); err != nil {
		return responsesFile{}, fmt.Errorf("parse responses json: %w", err)
	}
	return rf, nil
}

// generateResponses produce un set completo y reproducible para los tres
// instrumentos del banco.
func generateResponses(bank *itembank.Bank, rng *rand.Rand) responsesFile {
	fill := func(instrument domain.Instrument) domain.ResponseSet {
		items, err := bank.Items(instrument)
		if err != nil {
			log.Fatalf("bank items: %v", err)
		}
		set := make(domain.ResponseSet, len(items))
		for _, item := range items {
			span := item.ScaleMax - item.ScaleMin
			set[item.ID] = float64(item.ScaleMin + rng.Intn(span+1))
		}
		return set
	}
	return responsesFile{
		Trait: fill(domain.InstrumentTrait),
		Type:  fill(domain.InstrumentType),
		Style: fill(domain.InstrumentStyle),
	}
}

func printReport(report domain.PersonalityReport) {
	if report.Trait != nil {
		fmt.Printf("%s==== Rasgos ====%s\n", colorGreen, colorReset)
		dims := make([]string, 0, len(report.Trait.Percentiles))
		for dim := range report.Trait.Percentiles {
			dims = append(dims, dim)
		}
		sort.Strings(dims)
		for _, dim := range dims {
			fmt.Printf("  %-22s P%02d  %s\n", dim, report.Trait.Percentiles[dim], report.Trait.Descriptions[dim])
		}
		fmt.Printf("  Resumen: %s\n", report.Trait.Summary)
		fmt.Printf("  Fortalezas: %v\n", report.Trait.Strengths)
		fmt.Printf("  Desafíos: %v\n\n", report.Trait.Challenges)
	}

	if report.Type != nil {
		fmt.Printf("%s==== Tipo ====%s\n", colorGreen, colorReset)
		fmt.Printf("  Código: %s\n", report.Type.Code)
		axes := make([]string, 0, len(report.Type.Strengths))
		for axis := range report.Type.Strengths {
			axes = append(axes, axis)
		}
		sort.Strings(axes)
		for _, axis := range axes {
			fmt.Printf("  %s: %+.1f\n", axis, report.Type.Strengths[axis])
		}
		fmt.Println()
	}

	if report.Style != nil {
		fmt.Printf("%s==== Estilo ====%s\n", colorGreen, colorReset)
		styles := make([]string, 0, len(report.Style.Scores))
		for s := range report.Style.Scores {
			styles = append(styles, s)
		}
		sort.Strings(styles)
		for _, s := range styles {
			fmt.Printf("  %-12s %.1f\n", s, report.Style.Scores[s])
		}
		fmt.Printf("  Primario: %s\n\n", report.Style.PrimaryStyle)
	}

	fmt.Printf("Completado: trait=%v type=%v style=%v (banco %s)\n",
		report.Completed.Trait, report.Completed.Type, report.Completed.Style, report.BankVersion)
}
