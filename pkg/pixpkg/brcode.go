// Package pixpkg renders static PIX BR Code payloads (EMV QRCPS-MPM format).
//
// The rendered string is both the "copia e cola" code and the QR code
// content; the UI encodes it as an image.
package pixpkg

import (
	"fmt"
	"strings"
)

// EMV field IDs used by the PIX merchant-presented mode payload.
const (
	idPayloadFormat          = "00"
	idMerchantAccountInfo    = "26"
	idMerchantCategoryCode   = "52"
	idTransactionCurrency    = "53"
	idTransactionAmount      = "54"
	idCountryCode            = "58"
	idMerchantName           = "59"
	idMerchantCity           = "60"
	idAdditionalData         = "62"
	idCRC                    = "63"
	idGUI                    = "00"
	idPixKey                 = "01"
	idTxID                   = "05"
	pixGUI                   = "br.gov.bcb.pix"
	currencyBRL              = "986"
	countryBR                = "BR"
	categoryCodeNone         = "0000"
	maxTxIDLen               = 25
	maxMerchantNameLen       = 25
	maxMerchantCityLen       = 15
)

// Merchant identifies the charge beneficiary in the rendered payload.
type Merchant struct {
	PixKey string
	Name   string
	City   string
}

// Payload renders the full BR Code for the given transaction id and amount.
// The amount must already be formatted with two decimal places.
func Payload(m Merchant, txID, amount string) string {
	var b strings.Builder

	b.WriteString(tlv(idPayloadFormat, "01"))
	b.WriteString(tlv(idMerchantAccountInfo, tlv(idGUI, pixGUI)+tlv(idPixKey, m.PixKey)))
	b.WriteString(tlv(idMerchantCategoryCode, categoryCodeNone))
	b.WriteString(tlv(idTransactionCurrency, currencyBRL))
	b.WriteString(tlv(idTransactionAmount, amount))
	b.WriteString(tlv(idCountryCode, countryBR))
	b.WriteString(tlv(idMerchantName, truncate(m.Name, maxMerchantNameLen)))
	b.WriteString(tlv(idMerchantCity, truncate(m.City, maxMerchantCityLen)))
	b.WriteString(tlv(idAdditionalData, tlv(idTxID, TxID(txID))))

	// The CRC field covers everything rendered so far plus its own id and length.
	payload := b.String() + idCRC + "04"

	return payload + fmt.Sprintf("%04X", CRC16(payload))
}

// TxID normalizes a transaction id to the charset and length EMV allows.
func TxID(raw string) string {
	var b strings.Builder

	for _, r := range raw {
		switch {
		case r >= '0' && r <= '9', r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z':
			b.WriteRune(r)
		}

		if b.Len() == maxTxIDLen {
			break
		}
	}

	if b.Len() == 0 {
		return "***"
	}

	return b.String()
}

// CRC16 computes the CRC-16/CCITT-FALSE checksum the BR Code spec requires
// (polynomial 0x1021, initial value 0xFFFF).
func CRC16(s string) uint16 {
	crc := uint16(0xFFFF)

	for i := 0; i < len(s); i++ {
		crc ^= uint16(s[i]) << 8

		for bit := 0; bit < 8; bit++ {
			if crc&0x8000 != 0 {
				crc = crc<<1 ^ 0x1021
			} else {
				crc <<= 1
			}
		}
	}

	return crc
}

func tlv(id, value string) string {
	return fmt.Sprintf("%s%02d%s", id, len(value), value)
}

func truncate(s string, max int) string {
	if len(s) > max {
		return s[:max]
	}

	return s
}
