package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"HospitalRecords/repositories"
	"HospitalRecords/services"
	"HospitalRecords/utils"
)

// Menu is the hierarchical text interface over the record services.
// Every action is prompt, service call, render result; nothing below
// the services layer writes to the terminal.
type Menu struct {
	in  *bufio.Scanner
	out io.Writer

	patients     *services.PatientService
	doctors      *services.DoctorService
	catalog      *services.CatalogService
	usage        *services.ServiceUsageService
	appointments *services.AppointmentService
	billing      *services.BillingService
	invoices     *services.InvoiceService
	exports      *services.ExportService
}

func NewMenu(
	in io.Reader,
	out io.Writer,
	patients *services.PatientService,
	doctors *services.DoctorService,
	catalog *services.CatalogService,
	usage *services.ServiceUsageService,
	appointments *services.AppointmentService,
	billing *services.BillingService,
	invoices *services.InvoiceService,
	exports *services.ExportService,
) *Menu {
	return &Menu{
		in:           bufio.NewScanner(in),
		out:          out,
		patients:     patients,
		doctors:      doctors,
		catalog:      catalog,
		usage:        usage,
		appointments: appointments,
		billing:      billing,
		invoices:     invoices,
		exports:      exports,
	}
}

// Run loops over the main menu until the user exits or input ends.
func (m *Menu) Run(ctx context.Context) {
	for {
		m.println("\n=== Hospital Management CLI ===")
		m.println("1. Patients Management")
		m.println("2. Doctors Management")
		m.println("3. Services Management")
		m.println("4. Appointments Management")
		m.println("5. Billing Management")
		m.println("6. Export Management")
		m.println("7. Exit")

		choice, ok := m.prompt("Select an option: ")
		if !ok {
			return
		}
		switch choice {
		case "1":
			m.patientsMenu(ctx)
		case "2":
			m.doctorsMenu(ctx)
		case "3":
			m.servicesMenu(ctx)
		case "4":
			m.appointmentsMenu(ctx)
		case "5":
			m.billingMenu(ctx)
		case "6":
			m.exportMenu(ctx)
		case "7":
			m.println("Exiting Hospital Management CLI. Bye!")
			return
		default:
			m.println("Invalid choice. Please try again.")
		}
	}
}

// prompt reads one trimmed line; ok is false when input is exhausted.
func (m *Menu) prompt(label string) (string, bool) {
	fmt.Fprint(m.out, label)
	if !m.in.Scan() {
		return "", false
	}
	return strings.TrimSpace(m.in.Text()), true
}

func (m *Menu) println(s string) {
	fmt.Fprintln(m.out, s)
}

func (m *Menu) printf(format string, a ...any) {
	fmt.Fprintf(m.out, format, a...)
}

// report renders an operation outcome with the caller's success,
// not-found and duplicate messages; the remaining taxonomy states have
// fixed renderings.
func (m *Menu) report(err error, success, notFound, duplicate string) {
	var vErr *utils.ValidationError
	var refErr *repositories.ReferenceError
	switch {
	case err == nil:
		m.println(success)
	case errors.As(err, &vErr):
		m.println(vErr.Message)
	case errors.As(err, &refErr):
		m.printf("%s ID does not exist.\n", refErr.Entity)
	case errors.Is(err, repositories.ErrDuplicate):
		m.println(duplicate)
	case errors.Is(err, repositories.ErrNotFound):
		m.println(notFound)
	case errors.Is(err, repositories.ErrNoServicesToBill):
		m.println("No services to bill for this patient.")
	default:
		m.printf("Database error: %v\n", err)
	}
}

// reportFailure is report for read paths that have no success line.
func (m *Menu) reportFailure(err error, notFound string) {
	m.report(err, "", notFound, "")
}
