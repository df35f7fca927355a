// internal/models/digital_product.go
package models

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

type DigitalProductParams struct {
	ProductParams
	DownloadLink string  `json:"download_link" validate:"required,download_link"`
	FileSizeMB   float64 `json:"file_size_mb" validate:"gt=0,finite"`
}

// DigitalProduct is a downloadable item. It defaults to one unit in stock.
type DigitalProduct struct {
	BaseProduct
	downloadLink string
	fileSizeMB   float64
}

func NewDigitalProduct(params DigitalProductParams) (*DigitalProduct, error) {
	params.Name = strings.TrimSpace(params.Name)
	if err := validateParams(&params); err != nil {
		return nil, err
	}

	return &DigitalProduct{
		BaseProduct:  newBaseProduct(params.ProductParams, DefaultDigitalQuantity),
		downloadLink: params.DownloadLink,
		fileSizeMB:   params.FileSizeMB,
	}, nil
}

func (p *DigitalProduct) Type() ProductType    { return ProductTypeDigital }
func (p *DigitalProduct) DownloadLink() string { return p.downloadLink }
func (p *DigitalProduct) FileSizeMB() float64  { return p.fileSizeMB }

func (p *DigitalProduct) Details() Details {
	details := p.details(ProductTypeDigital)
	details["download_link"] = p.downloadLink
	details["file_size_mb"] = p.fileSizeMB
	return details
}

// GenerateNewDownloadLink replaces the download link with
// {baseURL}/{id}/download_{token} and returns it.
func (p *DigitalProduct) GenerateNewDownloadLink(baseURL string) (string, error) {
	if strings.TrimSpace(baseURL) == "" {
		return "", invalidArgument("base URL must be a non-empty string")
	}

	token := strings.SplitN(uuid.NewString(), "-", 2)[0]
	p.downloadLink = fmt.Sprintf("%s/%s/download_%s", strings.TrimRight(baseURL, "/"), p.id, token)
	return p.downloadLink, nil
}

func (p *DigitalProduct) String() string {
	return fmt.Sprintf("DigitalProduct(name='%s', price=%v, id='%s', link='%s')", p.name, p.price, p.id, p.downloadLink)
}
