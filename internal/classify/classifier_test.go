package classify

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/azzindani/06-Nanonets-OCRs/constants"
)

const invoiceText = `INVOICE
Invoice Number: INV-2024-001
Invoice Date: January 15, 2024
Due Date: February 15, 2024

Bill To:
John Smith
123 Main Street

Item        Qty    Unit Price    Amount
Widget A    10     $50.00        $500.00
Widget B    5      $75.00        $375.00

Subtotal: $875.00
Tax (8%): $70.00
Total Due: $945.00

Payment Terms: Net 30`

func TestClassifyInvoice(t *testing.T) {
	c := NewClassifier(Config{})
	res := c.Classify(invoiceText)

	assert.Equal(t, constants.Invoice, res.DocumentType)
	assert.Greater(t, res.Confidence, 0.5)
	assert.Contains(t, res.KeywordsFound, "invoice")
}

func TestClassifyReceipt(t *testing.T) {
	c := NewClassifier(Config{})
	res := c.Classify(`STORE RECEIPT
Transaction ID: 12345
Date: 2024-01-15 14:30

Coffee          $4.50
Sandwich        $8.99

Subtotal: $13.49
Tax: $1.08
Total: $14.57

Paid by Credit Card
Change: $0.00

Thank you for shopping!
Cashier: Jane`)

	assert.Equal(t, constants.Receipt, res.DocumentType)
	assert.Greater(t, res.Confidence, 0.3)
}

func TestClassifyContract(t *testing.T) {
	c := NewClassifier(Config{})
	res := c.Classify(`SERVICE AGREEMENT

This Agreement is entered into as of January 1, 2024.

WHEREAS the parties wish to establish terms and conditions,

The parties hereby agree to the following binding terms:

1. Term and Termination
The effective date of this contract shall be...

IN WITNESS WHEREOF, the parties have executed this Agreement.

Signature: _______________`)

	assert.Equal(t, constants.Contract, res.DocumentType)
	assert.Contains(t, res.KeywordsFound, "agreement")
}

func TestClassifyMedical(t *testing.T) {
	c := NewClassifier(Config{})
	res := c.Classify(`PATIENT INFORMATION
Patient Name: Jane Doe
Patient ID: P-12345
Date of Service: 2024-01-15

Diagnosis: Acute bronchitis

Prescription:
Medication: Amoxicillin
Dosage: 500mg twice daily

Treatment Plan: rest and increased fluids

Dr. Smith, MD
City Hospital Clinic`)

	assert.Equal(t, constants.Medical, res.DocumentType)
	assert.Greater(t, res.Confidence, 0.3)
}

func TestClassifyBankStatement(t *testing.T) {
	c := NewClassifier(Config{})
	res := c.Classify(`BANK STATEMENT
Account Number: 1234567890
Statement Period: January 1-31, 2024

Opening Balance: $5,000.00

01/05 Deposit    +$2,000.00
01/10 Withdrawal -$500.00

Closing Balance: $6,505.25`)

	assert.Equal(t, constants.BankStatement, res.DocumentType)
}

func TestClassifyUnknown(t *testing.T) {
	c := NewClassifier(Config{})
	res := c.Classify("xyz abc 123 random text without patterns")

	assert.Equal(t, constants.UnknownDocument, res.DocumentType)
	assert.Equal(t, 0.0, res.Confidence)
	assert.Empty(t, res.KeywordsFound)
}

func TestClassifyEmptyText(t *testing.T) {
	c := NewClassifier(Config{})
	res := c.Classify("")

	assert.Equal(t, constants.UnknownDocument, res.DocumentType)
	assert.Equal(t, 0.0, res.Confidence)
}

func TestClassifyAllScoresPopulated(t *testing.T) {
	c := NewClassifier(Config{})
	res := c.Classify("Invoice Number: 123")

	require.Len(t, res.AllScores, len(constants.ClassifiableTypes))
	for dt, score := range res.AllScores {
		assert.GreaterOrEqual(t, score, 0.0, "type %s", dt)
		assert.LessOrEqual(t, score, 1.0, "type %s", dt)
	}
}

func TestClassifyRepeatedKeywordCountsOnce(t *testing.T) {
	c := NewClassifier(Config{})
	once := c.Classify("receipt")
	repeated := c.Classify("receipt receipt receipt receipt receipt")

	assert.Equal(t, once.AllScores[constants.Receipt], repeated.AllScores[constants.Receipt])
}

func TestClassifyIdempotent(t *testing.T) {
	c := NewClassifier(Config{})
	assert.Equal(t, c.Classify(invoiceText), c.Classify(invoiceText))
}

func TestClassifyWithRouting(t *testing.T) {
	c := NewClassifier(Config{})

	res, schema := c.ClassifyWithRouting("Invoice Number: 123, Total Due: $500")
	assert.Equal(t, constants.Invoice, res.DocumentType)
	assert.Equal(t, "invoice", schema)

	_, schema = c.ClassifyWithRouting("xyz abc 123")
	assert.Equal(t, "generic", schema)
}

func TestSupportedTypes(t *testing.T) {
	c := NewClassifier(Config{})
	types := c.SupportedTypes()

	assert.NotEmpty(t, types)
	assert.Contains(t, types, "invoice")
	assert.Contains(t, types, "receipt")
	assert.NotContains(t, types, "unknown")
}
