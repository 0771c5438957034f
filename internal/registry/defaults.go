package registry

import "finodex/internal/domain"

// Template names referenced by document type definitions.
const (
	TemplateInvoice      = "invoice_extraction"
	TemplateKreditOffer  = "kreditangebot_extraction"
	TemplateContract     = "vertrag_extraction"
	TemplateIdentity     = "ausweis_extraction"
	TemplateComparison   = "kreditangebot_comparison"
	TemplateVerification = "document_verification"
)

const invoiceTemplate = `Extract the following fields from this invoice. The document may be in German or English.

{DOCUMENT_TEXT}

Return a JSON object with these fields:
{
  "vendorName": "",
  "invoiceNumber": "",
  "invoiceDate": "",
  "totalAmount": 0,
  "currency": "",
  "dueDate": "",
  "taxAmount": 0
}

Use null for required fields that are not present in the document. Omit optional fields that are missing.`

const kreditOfferTemplate = `Extract the loan offer parameters from this document. The document may be in German or English; field names stay German.

{DOCUMENT_TEXT}

Return a JSON object with these fields:
{
  "bank": "",
  "kreditbetrag": 0,
  "zinssatz": 0,
  "effektivzins": 0,
  "laufzeit": "",
  "monatsrate": 0,
  "angebotsdatum": "",
  "fixzinsperiode": "",
  "gesamtkosten": 0
}

Use null for required fields that are not present in the document. Omit optional fields that are missing.`

const contractTemplate = `Extract the key contract data from this document.

{DOCUMENT_TEXT}

Return a JSON object with these fields:
{
  "vertragspartner": "",
  "vertragsbeginn": "",
  "vertragsende": "",
  "laufzeit": "",
  "kuendigungsfrist": "",
  "monatlicheKosten": 0
}

Use null for required fields that are not present in the document. Omit optional fields that are missing.`

const identityTemplate = `Extract the personal data from this identity document.

{DOCUMENT_TEXT}

Return a JSON object with these fields:
{
  "vorname": "",
  "nachname": "",
  "geburtsdatum": "",
  "ausweisnummer": "",
  "nationalitaet": "",
  "gueltigBis": ""
}

Use null for required fields that are not present in the document. Omit optional fields that are missing.`

const comparisonTemplate = `You are given the extracted data of several loan offers. Compare them parameter by parameter and pick the best offer for each parameter (lowest for interest rates and costs, highest for the loan amount).

{DOCUMENT_TEXT}

Return a JSON object with this structure:
{
  "parameters": ["kreditbetrag", "zinssatz", "..."],
  "best_offers": [
    {"parameter": "", "offer_id": "", "value": "", "reason": ""}
  ]
}

"offer_id" must be the file name of the winning offer exactly as given. Include every parameter that appears in at least one offer.`

const verificationTemplate = `Check this document against the following checklist. For every item decide whether the document satisfies it.

Checklist:
{CHECKLIST_ITEMS}

{DOCUMENT_TEXT}

Return a JSON object of this shape:
{
  "verification": {
    "<item id>": {"passed": true, "reason": ""}
  }
}

Include every checklist item id. "reason" must briefly state what in the document supports the decision.`

// defaultTemplates maps template names to their text.
func defaultTemplates() map[string]string {
	return map[string]string{
		TemplateInvoice:      invoiceTemplate,
		TemplateKreditOffer:  kreditOfferTemplate,
		TemplateContract:     contractTemplate,
		TemplateIdentity:     identityTemplate,
		TemplateComparison:   comparisonTemplate,
		TemplateVerification: verificationTemplate,
	}
}

// defaultDocumentTypes returns the built-in document type set, used when no
// external JSON source is configured or loading it fails.
func defaultDocumentTypes() []domain.DocumentTypeDefinition {
	return []domain.DocumentTypeDefinition{
		{
			ID:               "invoice",
			Name:             "Rechnung",
			SupportedFormats: []string{"pdf", "png", "jpg", "jpeg", "docx"},
			MaxFileSize:      10 << 20,
			PromptTemplate:   TemplateInvoice,
			RequiredFields:   []string{"vendorName", "invoiceNumber", "invoiceDate", "totalAmount"},
		},
		{
			ID:               "kreditangebot",
			Name:             "Kreditangebot",
			SupportedFormats: []string{"pdf", "png", "jpg", "jpeg", "docx"},
			MaxFileSize:      15 << 20,
			PromptTemplate:   TemplateKreditOffer,
			RequiredFields:   []string{"kreditbetrag", "zinssatz", "laufzeit", "angebotsdatum"},
			MinFiles:         1,
			MaxFiles:         5,
		},
		{
			ID:               "vertrag",
			Name:             "Vertrag",
			SupportedFormats: []string{"pdf", "docx"},
			MaxFileSize:      20 << 20,
			PromptTemplate:   TemplateContract,
			RequiredFields:   []string{"vertragspartner", "vertragsbeginn", "laufzeit"},
		},
		{
			ID:               "ausweis",
			Name:             "Ausweisdokument",
			SupportedFormats: []string{"png", "jpg", "jpeg", "pdf"},
			MaxFileSize:      5 << 20,
			PromptTemplate:   TemplateIdentity,
			RequiredFields:   []string{"vorname", "nachname", "geburtsdatum", "ausweisnummer"},
		},
	}
}

// defaultChecklists returns the built-in verification checklists, keyed by
// document type.
func defaultChecklists() []domain.VerificationChecklist {
	return []domain.VerificationChecklist{
		{
			ID: "kreditangebot",
			Items: []domain.ChecklistItem{
				{ID: "kreditbetrag_angegeben", Label: "Kreditbetrag angegeben", Description: "The offer states the loan amount."},
				{ID: "zinssatz_angegeben", Label: "Zinssatz angegeben", Description: "The offer states the nominal interest rate."},
				{ID: "effektivzins_angegeben", Label: "Effektivzins angegeben", Description: "The offer states the effective annual rate."},
				{ID: "laufzeit_angegeben", Label: "Laufzeit angegeben", Description: "The offer states the loan term."},
				{ID: "bank_identifizierbar", Label: "Bank identifizierbar", Description: "The issuing bank is identifiable."},
			},
		},
		{
			ID: "vertrag",
			Items: []domain.ChecklistItem{
				{ID: "parteien_benannt", Label: "Vertragsparteien benannt", Description: "Both contract parties are named."},
				{ID: "beginn_angegeben", Label: "Vertragsbeginn angegeben", Description: "The contract start date is stated."},
				{ID: "laufzeit_angegeben", Label: "Laufzeit angegeben", Description: "The contract term is stated."},
				{ID: "kuendigung_geregelt", Label: "Kündigungsfrist geregelt", Description: "A notice period is specified."},
			},
		},
	}
}
