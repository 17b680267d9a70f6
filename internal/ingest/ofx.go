package ingest

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/aclindsa/ofxgo"
	"github.com/google/uuid"

	"github.com/sobihq/sobi/internal/model"
)

// ParseOFX reads an OFX/QFX bank export and returns the spending
// transactions it contains. Credits (deposits, refunds) are skipped:
// the classifier and aggregator only deal in spending.
func ParseOFX(r io.Reader) (*Result, error) {
	content, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read OFX file: %w", err)
	}

	resp, err := ofxgo.ParseResponse(strings.NewReader(preprocessOFX(string(content))))
	if err != nil {
		return nil, fmt.Errorf("failed to parse OFX file: %w", err)
	}

	result := &Result{}
	bankStmts, ccStmts := 0, 0

	for _, msg := range resp.Bank {
		if stmt, ok := msg.(*ofxgo.StatementResponse); ok && stmt.BankTranList != nil {
			bankStmts++
			appendOFXTransactions(result, stmt.BankTranList.Transactions, model.PaymentDebitCard)
		}
	}

	for _, msg := range resp.CreditCard {
		if stmt, ok := msg.(*ofxgo.CCStatementResponse); ok && stmt.BankTranList != nil {
			ccStmts++
			appendOFXTransactions(result, stmt.BankTranList.Transactions, model.PaymentCreditCard)
		}
	}

	slog.Info("Parsed OFX file",
		"transactions", len(result.Transactions),
		"bank_statements", bankStmts,
		"cc_statements", ccStmts)

	return result, nil
}

// preprocessOFX fixes common formatting issues in SGML-style OFX files
// before handing them to the parser.
func preprocessOFX(content string) string {
	return strings.TrimLeft(content, " \t\r\n")
}

func appendOFXTransactions(result *Result, ofxTxns []ofxgo.Transaction, paymentType model.PaymentType) {
	for _, ofxTxn := range ofxTxns {
		txn, ok := convertOFXTransaction(ofxTxn, paymentType)
		if !ok {
			continue
		}
		result.Transactions = append(result.Transactions, txn)
	}
}

// convertOFXTransaction maps one OFX record to a transaction. Returns
// false for credits and zero-amount records.
func convertOFXTransaction(ofxTxn ofxgo.Transaction, paymentType model.PaymentType) (model.Transaction, bool) {
	// OFX uses negative amounts for debits.
	amount, _ := ofxTxn.TrnAmt.Float64()
	if amount >= 0 {
		return model.Transaction{}, false
	}

	txn := model.Transaction{
		ID:          uuid.NewString(),
		Date:        ofxTxn.DtPosted.Time.Format("2006-01-02"),
		Time:        ofxTxn.DtPosted.Time.Format("15:04"),
		Merchant:    ofxMerchantName(ofxTxn),
		Memo:        string(ofxTxn.Memo),
		AmountKRW:   -amount,
		PaymentType: paymentType,
		Channel:     model.ChannelOffline,
	}

	if err := txn.Validate(); err != nil {
		slog.Warn("Skipping invalid OFX transaction",
			"fitid", string(ofxTxn.FiTID),
			"error", err)
		return model.Transaction{}, false
	}

	txn.Hash = txn.GenerateHash()
	return txn, true
}

// ofxMerchantName extracts the cleanest merchant name available.
func ofxMerchantName(ofxTxn ofxgo.Transaction) string {
	if ofxTxn.Payee != nil && ofxTxn.Payee.Name != "" {
		return strings.TrimSpace(string(ofxTxn.Payee.Name))
	}
	return strings.TrimSpace(string(ofxTxn.Name))
}
