package ingest

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sobihq/sobi/internal/model"
)

// Sample OFX data for testing.
const sampleBankOFX = `OFXHEADER:100
DATA:OFXSGML
VERSION:102
SECURITY:NONE
ENCODING:UTF-8
CHARSET:NONE
COMPRESSION:NONE
OLDFILEUID:NONE
NEWFILEUID:NONE

<OFX>
<SIGNONMSGSRSV1>
<SONRS>
<STATUS>
<CODE>0
<SEVERITY>INFO
</STATUS>
<DTSERVER>20240315120000[9:KST]
<LANGUAGE>KOR
</SONRS>
</SIGNONMSGSRSV1>
<BANKMSGSRSV1>
<STMTTRNRS>
<TRNUID>1
<STATUS>
<CODE>0
<SEVERITY>INFO
</STATUS>
<STMTRS>
<CURDEF>KRW
<BANKACCTFROM>
<BANKID>123456789
<ACCTID>1234567890
<ACCTTYPE>CHECKING
</BANKACCTFROM>
<BANKTRANLIST>
<DTSTART>20240301000000[9:KST]
<DTEND>20240331000000[9:KST]
<STMTTRN>
<TRNTYPE>DEBIT
<DTPOSTED>20240315123000[9:KST]
<TRNAMT>-5500.00
<FITID>2024031501
<NAME>스타벅스 강남점
</STMTTRN>
<STMTTRN>
<TRNTYPE>DEBIT
<DTPOSTED>20240316194500[9:KST]
<TRNAMT>-23000.00
<FITID>2024031601
<NAME>GS25
<MEMO>삼각김밥
</STMTTRN>
<STMTTRN>
<TRNTYPE>CREDIT
<DTPOSTED>20240320090000[9:KST]
<TRNAMT>15000.00
<FITID>2024032001
<NAME>환불 입금
</STMTTRN>
</BANKTRANLIST>
<LEDGERBAL>
<BALAMT>1000000.00
<DTASOF>20240331000000[9:KST]
</LEDGERBAL>
</STMTRS>
</STMTTRNRS>
</BANKMSGSRSV1>
</OFX>`

const sampleCreditCardOFX = `OFXHEADER:100
DATA:OFXSGML
VERSION:102
SECURITY:NONE
ENCODING:UTF-8
CHARSET:NONE
COMPRESSION:NONE
OLDFILEUID:NONE
NEWFILEUID:NONE

<OFX>
<SIGNONMSGSRSV1>
<SONRS>
<STATUS>
<CODE>0
<SEVERITY>INFO
</STATUS>
<DTSERVER>20240315120000[9:KST]
<LANGUAGE>KOR
</SONRS>
</SIGNONMSGSRSV1>
<CREDITCARDMSGSRSV1>
<CCSTMTTRNRS>
<TRNUID>1
<STATUS>
<CODE>0
<SEVERITY>INFO
</STATUS>
<CCSTMTRS>
<CURDEF>KRW
<CCACCTFROM>
<ACCTID>4111111111111111
</CCACCTFROM>
<BANKTRANLIST>
<DTSTART>20240301000000[9:KST]
<DTEND>20240331000000[9:KST]
<STMTTRN>
<TRNTYPE>DEBIT
<DTPOSTED>20240310101500[9:KST]
<TRNAMT>-28900.00
<FITID>2024031001
<NAME>쿠팡
</STMTTRN>
</BANKTRANLIST>
<LEDGERBAL>
<BALAMT>-28900.00
<DTASOF>20240331000000[9:KST]
</LEDGERBAL>
</CCSTMTRS>
</CCSTMTTRNRS>
</CREDITCARDMSGSRSV1>
</OFX>`

func TestParseOFXBankStatement(t *testing.T) {
	result, err := ParseOFX(strings.NewReader(sampleBankOFX))
	require.NoError(t, err)

	// The credit (refund) entry is dropped; only spending survives.
	require.Len(t, result.Transactions, 2)

	first := result.Transactions[0]
	assert.Equal(t, "스타벅스 강남점", first.Merchant)
	assert.Equal(t, "2024-03-15", first.Date)
	assert.Equal(t, "12:30", first.Time)
	assert.Equal(t, 5500.0, first.AmountKRW)
	assert.Equal(t, model.PaymentDebitCard, first.PaymentType)
	assert.Equal(t, model.ChannelOffline, first.Channel)
	assert.NotEmpty(t, first.ID)
	assert.NotEmpty(t, first.Hash)

	second := result.Transactions[1]
	assert.Equal(t, "GS25", second.Merchant)
	assert.Equal(t, "삼각김밥", second.Memo)
	assert.Equal(t, 23000.0, second.AmountKRW)
}

func TestParseOFXCreditCardStatement(t *testing.T) {
	result, err := ParseOFX(strings.NewReader(sampleCreditCardOFX))
	require.NoError(t, err)

	require.Len(t, result.Transactions, 1)
	txn := result.Transactions[0]
	assert.Equal(t, "쿠팡", txn.Merchant)
	assert.Equal(t, "2024-03-10", txn.Date)
	assert.Equal(t, 28900.0, txn.AmountKRW)
	assert.Equal(t, model.PaymentCreditCard, txn.PaymentType)
}

func TestParseOFXLeadingWhitespace(t *testing.T) {
	result, err := ParseOFX(strings.NewReader("\n\n  " + sampleBankOFX))
	require.NoError(t, err)
	assert.Len(t, result.Transactions, 2)
}

func TestParseOFXAmountsArePositive(t *testing.T) {
	result, err := ParseOFX(strings.NewReader(sampleBankOFX))
	require.NoError(t, err)

	for _, txn := range result.Transactions {
		assert.Positive(t, txn.AmountKRW, "merchant %s", txn.Merchant)
	}
}

func TestParseOFXInvalidData(t *testing.T) {
	_, err := ParseOFX(strings.NewReader("this is not an OFX file"))
	assert.Error(t, err)
}
