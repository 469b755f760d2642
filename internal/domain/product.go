package domain

// AnalyzeRequest represents a product gluten-risk analysis request
type AnalyzeRequest struct {
	ProductName    string `json:"productName" yaml:"productName"`
	Ingredients    string `json:"ingredients" yaml:"ingredients"`
	Barcode        string `json:"barcode,omitempty" yaml:"barcode,omitempty"`
	AdditionalInfo string `json:"additionalInfo,omitempty" yaml:"additionalInfo,omitempty"`
}

// Barcode formats recognised by the validator
const (
	FormatEAN13 = "EAN-13"
	FormatUPCA  = "UPC-A"
	FormatEAN8  = "EAN-8"
)

// BarcodeInfo is the result of validating a retail barcode
type BarcodeInfo struct {
	IsValid       bool   `json:"isValid" yaml:"isValid"`
	Format        string `json:"format,omitempty" yaml:"format,omitempty"` // EAN-13, UPC-A, EAN-8 or empty
	Length        int    `json:"length" yaml:"length"`
	ChecksumValid bool   `json:"checksumValid" yaml:"checksumValid"`
	CountryCode   string `json:"countryCode,omitempty" yaml:"countryCode,omitempty"` // EAN-13 only
}

// ProductAnalysis is a classification result enriched with barcode metadata
type ProductAnalysis struct {
	ClassificationResult `yaml:",inline"`
	BarcodeInfo          *BarcodeInfo `json:"barcodeInfo,omitempty" yaml:"barcodeInfo,omitempty"`
	Cached               bool         `json:"cached" yaml:"cached"`
}
