package main

import (
	"fmt"
	"io"
	"os"

	"github.com/Financial-Times/people-record-go/people"
	"github.com/google/uuid"
	cli "github.com/jawher/mow.cli"
	log "github.com/sirupsen/logrus"
)

type options struct {
	id        string
	name      string
	dob       string
	image     string
	otherName string
	otherDob  string
}

func main() {
	app := cli.App("people-fixture", "Builds person records and compares them field-by-field")
	id := app.String(cli.StringOpt{
		Name:   "id",
		Value:  "",
		Desc:   "UUID of the person (random when empty)",
		EnvVar: "PERSON_ID",
	})
	name := app.String(cli.StringOpt{
		Name:   "name",
		Value:  "David",
		Desc:   "Name of the person",
		EnvVar: "PERSON_NAME",
	})
	dob := app.String(cli.StringOpt{
		Name:   "dob",
		Value:  "1947-01-08",
		Desc:   "Date of birth, YYYY-MM-DD",
		EnvVar: "PERSON_DOB",
	})
	image := app.String(cli.StringOpt{
		Name:   "image",
		Value:  "catflap",
		Desc:   "Image content, stored as raw bytes",
		EnvVar: "PERSON_IMAGE",
	})
	otherName := app.String(cli.StringOpt{
		Name:   "other-name",
		Value:  "",
		Desc:   "Name of the copy to compare against (defaults to --name)",
		EnvVar: "OTHER_NAME",
	})
	otherDob := app.String(cli.StringOpt{
		Name:   "other-dob",
		Value:  "",
		Desc:   "Date of birth of the copy to compare against (defaults to --dob)",
		EnvVar: "OTHER_DOB",
	})
	logLevel := app.String(cli.StringOpt{
		Name:   "log-level",
		Value:  "info",
		Desc:   "Logging level (debug, info, warn, error)",
		EnvVar: "LOG_LEVEL",
	})

	app.Action = func() {
		if err := initLogging(os.Stderr, *logLevel); err != nil {
			log.WithError(err).Fatal("Invalid log level")
		}
		opts := options{
			id:        *id,
			name:      *name,
			dob:       *dob,
			image:     *image,
			otherName: *otherName,
			otherDob:  *otherDob,
		}
		if err := run(os.Stdout, opts); err != nil {
			log.WithError(err).Fatal("Could not compare people")
		}
	}

	app.Run(os.Args)
}

func run(out io.Writer, opts options) error {
	subject, err := buildPerson(opts)
	if err != nil {
		return err
	}

	other := subject
	if opts.otherName != "" {
		other = other.WithName(opts.otherName)
	}
	if opts.otherDob != "" {
		d, err := people.ParseDate(opts.otherDob)
		if err != nil {
			return fmt.Errorf("invalid other date of birth %q: %w", opts.otherDob, err)
		}
		other = other.WithDateOfBirth(d)
	}

	fingerprint, err := people.Fingerprint(subject)
	if err != nil {
		return err
	}
	log.WithFields(log.Fields{
		"uuid":        subject.ID(),
		"fingerprint": fingerprint,
	}).Debug("Built person")

	fmt.Fprintln(out, people.Report(subject, other))
	fmt.Fprintf(out, "equal by id: %t\n", subject.Equal(other))
	fmt.Fprintf(out, "hash: %x\n", subject.Hash())

	log.WithFields(log.Fields{
		"uuid":              subject.ID(),
		"equalById":         subject.Equal(other),
		"equalByProperties": people.PropertiesEqual(subject, other),
	}).Info("Compared people")
	return nil
}

func buildPerson(opts options) (*people.Person, error) {
	dob, err := people.ParseDate(opts.dob)
	if err != nil {
		return nil, fmt.Errorf("invalid date of birth %q: %w", opts.dob, err)
	}
	if opts.id == "" {
		return people.New(opts.name, dob, []byte(opts.image)), nil
	}
	id, err := uuid.Parse(opts.id)
	if err != nil {
		return nil, fmt.Errorf("invalid uuid %q: %w", opts.id, err)
	}
	return people.NewWithID(id, opts.name, dob, []byte(opts.image)), nil
}
