// Command hashgen reads a JSON array of {email, cpf} records and writes the
// same array with each CPF replaced by its bcrypt hash, ready to be loaded
// into the users collection as {email, senha}.
//
// Usage:
//
//	hashgen -in usuarios.json -out usuarios_hashed.json
//
// CPFs are reduced to their digits before hashing, so formatted input
// ("123.456.789-09") and bare input ("12345678909") produce the same hash.
package main

import (
	"encoding/json"
	"flag"
	"os"
	"strings"

	"github.com/skti-dev/bncc-backend/internal/logger"
	"github.com/skti-dev/bncc-backend/internal/utils"
)

type inputRecord struct {
	Email string `json:"email"`
	CPF   string `json:"cpf"`
}

type outputRecord struct {
	Email string `json:"email"`
	Senha string `json:"senha"`
}

func main() {
	inPath := flag.String("in", "", "path to the JSON array of {email, cpf} records")
	outPath := flag.String("out", "", "path of the output file (defaults to stdout)")
	flag.Parse()

	log := logger.NewLogger("hashgen")

	if *inPath == "" {
		log.Fatal().Msg("-in is required")
	}

	raw, err := os.ReadFile(*inPath)
	if err != nil {
		log.Fatal().Err(err).Msg("error reading input file")
	}

	var records []inputRecord
	if err := json.Unmarshal(raw, &records); err != nil {
		log.Fatal().Err(err).Msg("error parsing input file")
	}

	hashed := make([]outputRecord, 0, len(records))
	for _, record := range records {
		cpf := digitsOnly(record.CPF)
		if cpf == "" {
			log.Warn().Str("email", record.Email).Msg("record without cpf digits skipped")
			continue
		}

		hash, err := utils.HashPassword(cpf)
		if err != nil {
			log.Fatal().Err(err).Str("email", record.Email).Msg("error hashing cpf")
		}

		hashed = append(hashed, outputRecord{Email: record.Email, Senha: hash})
	}

	encoded, err := json.MarshalIndent(hashed, "", "  ")
	if err != nil {
		log.Fatal().Err(err).Msg("error encoding output")
	}

	if *outPath == "" {
		os.Stdout.Write(append(encoded, '\n'))
		return
	}

	if err := os.WriteFile(*outPath, append(encoded, '\n'), 0o600); err != nil {
		log.Fatal().Err(err).Msg("error writing output file")
	}

	log.Info().Int("records", len(hashed)).Str("out", *outPath).Msg("hashes written")
}

// digitsOnly strips every non-digit rune from a CPF string.
func digitsOnly(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
