package rendering

import (
	"archive/zip"
	"encoding/xml"
	"io"
	"strconv"
	"strings"
	"time"
)

// US Letter in twentieths of a point.
const (
	pageWidthTwips  = 12240
	pageHeightTwips = 15840
	twipsPerInch    = 1440
	twipsPerPoint   = 20
)

// packageTime is stamped on every zip entry so identical input produces
// identical bytes.
var packageTime = time.Date(1980, time.January, 1, 0, 0, 0, 0, time.UTC)

const wordNamespace = "http://schemas.openxmlformats.org/wordprocessingml/2006/main"

const contentTypesXML = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Types xmlns="http://schemas.openxmlformats.org/package/2006/content-types">` +
	`<Default Extension="rels" ContentType="application/vnd.openxmlformats-package.relationships+xml"/>` +
	`<Default Extension="xml" ContentType="application/xml"/>` +
	`<Override PartName="/word/document.xml" ContentType="application/vnd.openxmlformats-officedocument.wordprocessingml.document.main+xml"/>` +
	`<Override PartName="/word/styles.xml" ContentType="application/vnd.openxmlformats-officedocument.wordprocessingml.styles+xml"/>` +
	`<Override PartName="/word/numbering.xml" ContentType="application/vnd.openxmlformats-officedocument.wordprocessingml.numbering+xml"/>` +
	`</Types>`

const rootRelsXML = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">` +
	`<Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/officeDocument" Target="word/document.xml"/>` +
	`</Relationships>`

const documentRelsXML = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">` +
	`<Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/styles" Target="styles.xml"/>` +
	`<Relationship Id="rId2" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/numbering" Target="numbering.xml"/>` +
	`</Relationships>`

const stylesXML = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<w:styles xmlns:w="` + wordNamespace + `">` +
	`<w:docDefaults><w:rPrDefault><w:rPr><w:rFonts w:ascii="Calibri" w:hAnsi="Calibri" w:cs="Calibri"/><w:sz w:val="22"/></w:rPr></w:rPrDefault>` +
	`<w:pPrDefault><w:pPr><w:spacing w:after="0" w:line="259" w:lineRule="auto"/></w:pPr></w:pPrDefault></w:docDefaults>` +
	`<w:style w:type="paragraph" w:default="1" w:styleId="Normal"><w:name w:val="Normal"/></w:style>` +
	`<w:style w:type="paragraph" w:styleId="ListBullet"><w:name w:val="List Bullet"/><w:basedOn w:val="Normal"/>` +
	`<w:pPr><w:numPr><w:numId w:val="1"/></w:numPr><w:ind w:left="360" w:hanging="360"/></w:pPr></w:style>` +
	`</w:styles>`

const numberingXML = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<w:numbering xmlns:w="` + wordNamespace + `">` +
	`<w:abstractNum w:abstractNumId="0"><w:multiLevelType w:val="singleLevel"/>` +
	`<w:lvl w:ilvl="0"><w:start w:val="1"/><w:numFmt w:val="bullet"/><w:lvlText w:val="•"/><w:lvlJc w:val="left"/>` +
	`<w:pPr><w:ind w:left="360" w:hanging="360"/></w:pPr></w:lvl></w:abstractNum>` +
	`<w:num w:numId="1"><w:abstractNumId w:val="0"/></w:num>` +
	`</w:numbering>`

// packagePart is one file inside the .docx zip
type packagePart struct {
	name    string
	content string
}

// WritePackage serializes the document as an Office Open XML package.
func (d *Document) WritePackage(w io.Writer) error {
	body, err := d.documentXML()
	if err != nil {
		return &SerializationError{Part: "word/document.xml", Cause: err}
	}
	parts := []packagePart{
		{name: "[Content_Types].xml", content: contentTypesXML},
		{name: "_rels/.rels", content: rootRelsXML},
		{name: "word/document.xml", content: body},
		{name: "word/styles.xml", content: stylesXML},
		{name: "word/numbering.xml", content: numberingXML},
		{name: "word/_rels/document.xml.rels", content: documentRelsXML},
	}

	zw := zip.NewWriter(w)
	for _, part := range parts {
		fw, err := zw.CreateHeader(&zip.FileHeader{
			Name:     part.name,
			Method:   zip.Deflate,
			Modified: packageTime,
		})
		if err != nil {
			return &SerializationError{Part: part.name, Cause: err}
		}
		if _, err := io.WriteString(fw, part.content); err != nil {
			return &SerializationError{Part: part.name, Cause: err}
		}
	}
	if err := zw.Close(); err != nil {
		return &SerializationError{Part: "zip directory", Cause: err}
	}
	return nil
}

// WordprocessingML elements. Tag names carry the w: prefix literally so the
// output binds them to the namespace declared on w:document.
type (
	xmlDocument struct {
		XMLName xml.Name `xml:"w:document"`
		NS      string   `xml:"xmlns:w,attr"`
		Body    xmlBody  `xml:"w:body"`
	}

	xmlBody struct {
		Paragraphs []xmlParagraph `xml:"w:p"`
		Section    xmlSection     `xml:"w:sectPr"`
	}

	xmlSection struct {
		PageSize   xmlPageSize   `xml:"w:pgSz"`
		PageMargin xmlPageMargin `xml:"w:pgMar"`
	}

	xmlPageSize struct {
		W int `xml:"w:w,attr"`
		H int `xml:"w:h,attr"`
	}

	xmlPageMargin struct {
		Top    int `xml:"w:top,attr"`
		Right  int `xml:"w:right,attr"`
		Bottom int `xml:"w:bottom,attr"`
		Left   int `xml:"w:left,attr"`
		Header int `xml:"w:header,attr"`
		Footer int `xml:"w:footer,attr"`
		Gutter int `xml:"w:gutter,attr"`
	}

	xmlParagraph struct {
		Props *xmlParagraphProps `xml:"w:pPr"`
		Runs  []xmlRun           `xml:"w:r"`
	}

	xmlParagraphProps struct {
		Style     *xmlVal       `xml:"w:pStyle"`
		Numbering *xmlNumbering `xml:"w:numPr"`
		Tabs      *xmlTabs      `xml:"w:tabs"`
		Spacing   *xmlSpacing   `xml:"w:spacing"`
		Justify   *xmlVal       `xml:"w:jc"`
	}

	xmlNumbering struct {
		Level xmlVal `xml:"w:ilvl"`
		ID    xmlVal `xml:"w:numId"`
	}

	xmlTabs struct {
		Stop xmlTabStop `xml:"w:tab"`
	}

	xmlTabStop struct {
		Val string `xml:"w:val,attr"`
		Pos int    `xml:"w:pos,attr"`
	}

	xmlSpacing struct {
		Before int `xml:"w:before,attr"`
		After  int `xml:"w:after,attr"`
	}

	xmlRun struct {
		Props   *xmlRunProps `xml:"w:rPr"`
		Content []xmlRunItem
	}

	xmlRunProps struct {
		Fonts  *xmlFonts `xml:"w:rFonts"`
		Bold   *struct{} `xml:"w:b"`
		Italic *struct{} `xml:"w:i"`
		Size   *xmlVal   `xml:"w:sz"`
	}

	xmlFonts struct {
		ASCII   string `xml:"w:ascii,attr"`
		HAnsi   string `xml:"w:hAnsi,attr"`
		Complex string `xml:"w:cs,attr"`
	}

	// xmlRunItem is a w:t, w:tab or w:br; the element name comes from XMLName.
	xmlRunItem struct {
		XMLName xml.Name
		Space   string `xml:"xml:space,attr,omitempty"`
		Text    string `xml:",chardata"`
	}

	xmlVal struct {
		Val string `xml:"w:val,attr"`
	}
)

var (
	runTab   = xmlRunItem{XMLName: xml.Name{Local: "w:tab"}}
	runBreak = xmlRunItem{XMLName: xml.Name{Local: "w:br"}}
)

func (d *Document) documentXML() (string, error) {
	margin := int(d.MarginInches * twipsPerInch)
	textWidth := pageWidthTwips - 2*margin

	doc := xmlDocument{
		NS: wordNamespace,
		Body: xmlBody{
			Section: xmlSection{
				PageSize: xmlPageSize{W: pageWidthTwips, H: pageHeightTwips},
				PageMargin: xmlPageMargin{
					Top: margin, Right: margin, Bottom: margin, Left: margin,
					Header: 720, Footer: 720,
				},
			},
		},
	}
	for _, p := range d.Paragraphs {
		doc.Body.Paragraphs = append(doc.Body.Paragraphs, toXMLParagraph(p, textWidth))
	}

	out, err := xml.Marshal(doc)
	if err != nil {
		return "", err
	}
	return `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>` + "\n" + string(out), nil
}

func toXMLParagraph(p Paragraph, textWidth int) xmlParagraph {
	var props xmlParagraphProps
	set := false
	if p.Bullet {
		props.Style = &xmlVal{Val: "ListBullet"}
		props.Numbering = &xmlNumbering{Level: xmlVal{Val: "0"}, ID: xmlVal{Val: "1"}}
		set = true
	}
	if p.DateTab {
		props.Tabs = &xmlTabs{Stop: xmlTabStop{Val: "right", Pos: textWidth}}
		set = true
	}
	if p.SpaceBefore > 0 || p.SpaceAfter > 0 {
		props.Spacing = &xmlSpacing{
			Before: int(p.SpaceBefore * twipsPerPoint),
			After:  int(p.SpaceAfter * twipsPerPoint),
		}
		set = true
	}
	if p.Align != AlignLeft {
		props.Justify = &xmlVal{Val: string(p.Align)}
		set = true
	}

	out := xmlParagraph{}
	if set {
		out.Props = &props
	}
	for _, r := range p.Runs {
		out.Runs = append(out.Runs, toXMLRun(r))
	}
	return out
}

func toXMLRun(r Run) xmlRun {
	var props xmlRunProps
	set := false
	if r.Font != "" {
		props.Fonts = &xmlFonts{ASCII: r.Font, HAnsi: r.Font, Complex: r.Font}
		set = true
	}
	if r.Bold {
		props.Bold = &struct{}{}
		set = true
	}
	if r.Italic {
		props.Italic = &struct{}{}
		set = true
	}
	if r.Size > 0 {
		// w:sz is in half-points.
		props.Size = &xmlVal{Val: strconv.Itoa(int(r.Size * 2))}
		set = true
	}

	out := xmlRun{}
	if set {
		out.Props = &props
	}
	for i, line := range strings.Split(r.Text, "\n") {
		if i > 0 {
			out.Content = append(out.Content, runBreak)
		}
		for j, chunk := range strings.Split(line, "\t") {
			if j > 0 {
				out.Content = append(out.Content, runTab)
			}
			if chunk != "" {
				out.Content = append(out.Content, xmlRunItem{
					XMLName: xml.Name{Local: "w:t"},
					Space:   "preserve",
					Text:    chunk,
				})
			}
		}
	}
	return out
}
