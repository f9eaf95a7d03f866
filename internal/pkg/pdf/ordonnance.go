package pdf

import (
	"fmt"
	"time"

	"github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/props"
)

// OrdonnanceData is the fully-resolved prescription handed to the renderer
type OrdonnanceData struct {
	Numero       uint
	DateCreation time.Time
	ValideJusquA *time.Time
	Instructions string

	Medecin    PersonneData
	Specialite string
	Patient    PersonneData
	PatientCIN string

	Cabinet CabinetData
	Lignes  []LigneData
}

// PersonneData identifies a doctor or patient on the document
type PersonneData struct {
	Nom    string
	Prenom string
}

// CabinetData is the letterhead block
type CabinetData struct {
	Nom     string
	Adresse string
	NumTel  string
	Email   string
}

// LigneData is one prescribed medication line
type LigneData struct {
	Medicament string
	Posologie  string
	Duree      string
	Quantite   int
}

// OrdonnancePDF renders a prescription as a PDF byte stream
func OrdonnancePDF(data OrdonnanceData) ([]byte, error) {
	cfg := config.NewBuilder().
		WithLeftMargin(15).
		WithRightMargin(15).
		WithTopMargin(15).
		Build()

	m := maroto.New(cfg)

	// Letterhead
	m.AddRow(8, text.NewCol(12, data.Cabinet.Nom, props.Text{
		Size:  14,
		Style: fontstyle.Bold,
		Align: align.Center,
	}))
	m.AddRow(5, text.NewCol(12, data.Cabinet.Adresse, props.Text{Size: 9, Align: align.Center}))
	m.AddRow(5, text.NewCol(12, fmt.Sprintf("Tél: %s — %s", data.Cabinet.NumTel, data.Cabinet.Email), props.Text{
		Size:  9,
		Align: align.Center,
	}))
	m.AddRow(6, line.NewCol(12))

	// Title
	m.AddRow(12, text.NewCol(12, "ORDONNANCE MÉDICALE", props.Text{
		Size:  13,
		Style: fontstyle.Bold,
		Align: align.Center,
		Top:   3,
	}))

	// Doctor / patient / date block
	medecin := fmt.Sprintf("Dr. %s %s", data.Medecin.Nom, data.Medecin.Prenom)
	if data.Specialite != "" {
		medecin += " — " + data.Specialite
	}
	patient := fmt.Sprintf("%s %s (CIN: %s)", data.Patient.Nom, data.Patient.Prenom, data.PatientCIN)

	m.AddRows(
		row.New(6).Add(
			text.NewCol(6, medecin, props.Text{Size: 10}),
			text.NewCol(6, "Date: "+data.DateCreation.Format("02/01/2006"), props.Text{Size: 10, Align: align.Right}),
		),
		row.New(6).Add(
			text.NewCol(12, "Patient: "+patient, props.Text{Size: 10}),
		),
	)
	if data.ValideJusquA != nil {
		m.AddRow(6, text.NewCol(12, "Valide jusqu'au: "+data.ValideJusquA.Format("02/01/2006"), props.Text{Size: 10}))
	}
	m.AddRow(4, line.NewCol(12))

	// Medication table
	m.AddRow(8, text.NewCol(12, "Prescription", props.Text{Size: 11, Style: fontstyle.Bold, Top: 2}))
	m.AddRows(row.New(6).Add(
		text.NewCol(5, "Médicament", props.Text{Size: 9, Style: fontstyle.Bold}),
		text.NewCol(4, "Posologie", props.Text{Size: 9, Style: fontstyle.Bold}),
		text.NewCol(2, "Durée", props.Text{Size: 9, Style: fontstyle.Bold}),
		text.NewCol(1, "Qté", props.Text{Size: 9, Style: fontstyle.Bold, Align: align.Right}),
	))
	for _, l := range data.Lignes {
		m.AddRows(row.New(6).Add(
			text.NewCol(5, l.Medicament, props.Text{Size: 9}),
			text.NewCol(4, l.Posologie, props.Text{Size: 9}),
			text.NewCol(2, l.Duree, props.Text{Size: 9}),
			text.NewCol(1, fmt.Sprintf("%d", l.Quantite), props.Text{Size: 9, Align: align.Right}),
		))
	}

	if data.Instructions != "" {
		m.AddRow(8, text.NewCol(12, "Instructions", props.Text{Size: 11, Style: fontstyle.Bold, Top: 2}))
		m.AddRow(10, text.NewCol(12, data.Instructions, props.Text{Size: 9}))
	}

	// Signature area
	m.AddRow(20, col.New(12))
	m.AddRows(row.New(6).Add(
		col.New(7),
		text.NewCol(5, "Signature et cachet", props.Text{Size: 9, Align: align.Center}),
	))

	doc, err := m.Generate()
	if err != nil {
		return nil, err
	}
	return doc.GetBytes(), nil
}
