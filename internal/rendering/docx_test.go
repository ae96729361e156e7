package rendering

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func paragraphTexts(doc *Document) []string {
	texts := make([]string, 0, len(doc.Paragraphs))
	for _, p := range doc.Paragraphs {
		texts = append(texts, p.Text())
	}
	return texts
}

func readPart(t *testing.T, data []byte, name string) string {
	t.Helper()
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	require.NoError(t, err)
	for _, f := range zr.File {
		if f.Name != name {
			continue
		}
		rc, err := f.Open()
		require.NoError(t, err)
		defer rc.Close()
		content, err := io.ReadAll(rc)
		require.NoError(t, err)
		return string(content)
	}
	t.Fatalf("part %s not found", name)
	return ""
}

func TestBuildDOCX_EndToEndExample(t *testing.T) {
	doc := BuildDOCX(anaRecord())

	assert.Equal(t, 0.75, doc.MarginInches)
	assert.Equal(t, []string{
		"Ana Ruiz",
		"ana@x.com",
		strings.Repeat("_", 80),
		"EXPERIENCE",
		"Acme — Engineer\t2021-01 – Present",
		"Shipped X",
		"",
	}, paragraphTexts(doc))

	name := doc.Paragraphs[0]
	assert.Equal(t, AlignCenter, name.Align)
	assert.True(t, name.Runs[0].Bold)
	assert.Equal(t, 22.0, name.Runs[0].Size)

	assert.Equal(t, AlignCenter, doc.Paragraphs[1].Align)

	title := doc.Paragraphs[3]
	assert.True(t, title.Runs[0].Bold)
	assert.Equal(t, 13.0, title.Runs[0].Size)
	assert.Equal(t, 12.0, title.SpaceBefore)
	assert.Equal(t, 6.0, title.SpaceAfter)

	header := doc.Paragraphs[4]
	require.Len(t, header.Runs, 2)
	assert.True(t, header.Runs[0].Bold)
	assert.False(t, header.Runs[1].Bold)
	assert.True(t, header.DateTab)

	assert.True(t, doc.Paragraphs[5].Bullet)
}

func TestBuildDOCX_FullRecordLayout(t *testing.T) {
	doc := BuildDOCX(fullRecord())

	assert.Equal(t, []string{
		"José Núñez",
		"jose@example.com | +34 600 000 000 | linkedin.com/in/jose | Sevilla",
		strings.Repeat("_", 80),
		"Backend engineer & team lead.",
		"EDUCATION",
		"TU Delft\t2014-09 – 2016-06",
		"MSc Distributed Systems",
		"",
		"Universidad de Sevilla\t2010-09 – 2014-06",
		"BSc Computer Science, Sevilla",
		"Honours",
		"",
		"EXPERIENCE",
		"Globex — Staff Engineer\t2020-03 – Present",
		"Led platform team",
		"",
		"Acme — Engineer\t2016-07 – 2020-02",
		"Madrid",
		"Built <billing>",
		"Cut latency 40%",
		"",
		"PROJECTS",
		"ledger (https://github.com/jose/ledger)",
		"Used by 3 teams",
		"Technologies: Go, Postgres",
		"",
		"CERTIFICATIONS",
		"CKA\t2021-05",
		"CNCF, Credential: ABC-123",
		"SKILLS",
		"Languages: Go, Python",
		"Tools: Kubernetes",
	}, paragraphTexts(doc))
}

func TestBuildDOCX_RunFormatting(t *testing.T) {
	doc := BuildDOCX(fullRecord())
	byText := make(map[string]Paragraph)
	for _, p := range doc.Paragraphs {
		byText[p.Text()] = p
	}

	degree := byText["MSc Distributed Systems"]
	assert.True(t, degree.Runs[0].Italic)

	location := byText["Madrid"]
	assert.True(t, location.Runs[0].Italic)

	project := byText["ledger (https://github.com/jose/ledger)"]
	require.Len(t, project.Runs, 2)
	assert.True(t, project.Runs[0].Bold)
	assert.False(t, project.Runs[1].Bold)

	tech := byText["Technologies: Go, Postgres"]
	assert.Equal(t, 10.0, tech.Runs[0].Size)

	skills := byText["Languages: Go, Python"]
	require.Len(t, skills.Runs, 2)
	assert.Equal(t, "Languages: ", skills.Runs[0].Text)
	assert.True(t, skills.Runs[0].Bold)
	assert.False(t, skills.Runs[1].Bold)

	cert := byText["CNCF, Credential: ABC-123"]
	assert.True(t, cert.Runs[0].Italic)
}

func TestBuildDOCX_OmitsEmptySections(t *testing.T) {
	for _, text := range paragraphTexts(BuildDOCX(anaRecord())) {
		assert.NotEqual(t, "PROJECTS", text)
		assert.NotEqual(t, "SKILLS", text)
	}
}

func TestDOCX_PackageContents(t *testing.T) {
	data, err := DOCX(anaRecord())
	require.NoError(t, err)

	body := readPart(t, data, "word/document.xml")
	assert.Contains(t, body, `<w:t xml:space="preserve">Ana Ruiz</w:t>`)
	assert.Contains(t, body, `<w:t xml:space="preserve">ana@x.com</w:t>`)
	assert.Contains(t, body, `<w:tab></w:tab><w:t xml:space="preserve">2021-01 – Present</w:t>`)
	assert.Contains(t, body, `<w:pgMar w:top="1080" w:right="1080" w:bottom="1080" w:left="1080"`)
	assert.Contains(t, body, `<w:tab w:val="right" w:pos="10080"></w:tab>`)
	assert.Contains(t, body, `<w:sz w:val="44"></w:sz>`)
	assert.Contains(t, body, `<w:jc w:val="center"></w:jc>`)
	assert.Contains(t, body, `<w:numId w:val="1"></w:numId>`)
	assert.Contains(t, body, `<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main">`)
	assert.Contains(t, body, `w:header="720" w:footer="720" w:gutter="0"`)
	assert.NotContains(t, body, "PROJECTS")

	assert.Contains(t, readPart(t, data, "[Content_Types].xml"), "wordprocessingml.document.main+xml")
	assert.Contains(t, readPart(t, data, "word/numbering.xml"), `w:val="bullet"`)
	assert.Contains(t, readPart(t, data, "word/styles.xml"), `w:styleId="ListBullet"`)
}

func TestDOCX_EscapesMarkup(t *testing.T) {
	data, err := DOCX(fullRecord())
	require.NoError(t, err)

	body := readPart(t, data, "word/document.xml")
	assert.Contains(t, body, "Built &lt;billing&gt;")
	assert.Contains(t, body, "Backend engineer &amp; team lead.")
}

func TestDOCX_DocumentIsWellFormed(t *testing.T) {
	rec := fullRecord()
	data, err := DOCX(rec)
	require.NoError(t, err)

	dec := xml.NewDecoder(strings.NewReader(readPart(t, data, "word/document.xml")))
	paragraphs := 0
	for {
		tok, err := dec.Token()
		if errors.Is(err, io.EOF) {
			break
		}
		require.NoError(t, err)
		if start, ok := tok.(xml.StartElement); ok && start.Name.Local == "p" {
			assert.Equal(t, wordNamespace, start.Name.Space)
			paragraphs++
		}
	}
	assert.Equal(t, len(BuildDOCX(rec).Paragraphs), paragraphs)
}

func TestDocumentXML_RunContentOrder(t *testing.T) {
	doc := &Document{
		MarginInches: 0.75,
		Paragraphs: []Paragraph{{
			Runs: []Run{{Text: "a\tb\nc", Bold: true}},
		}},
	}
	body, err := doc.documentXML()
	require.NoError(t, err)
	assert.Contains(t, body, `<w:r><w:rPr><w:b></w:b></w:rPr>`+
		`<w:t xml:space="preserve">a</w:t><w:tab></w:tab><w:t xml:space="preserve">b</w:t>`+
		`<w:br></w:br><w:t xml:space="preserve">c</w:t></w:r>`)
	assert.NotContains(t, body, "<w:pPr>")
}

func TestDOCX_Idempotent(t *testing.T) {
	first, err := DOCX(fullRecord())
	require.NoError(t, err)
	second, err := DOCX(fullRecord())
	require.NoError(t, err)

	assert.True(t, bytes.Equal(first, second))
}

type failingWriter struct{}

func (failingWriter) Write(_ []byte) (int, error) {
	return 0, errors.New("disk full")
}

func TestRenderDOCX_WriteFailure(t *testing.T) {
	err := RenderDOCX(failingWriter{}, anaRecord())
	require.Error(t, err)

	var serErr *SerializationError
	require.ErrorAs(t, err, &serErr)
	assert.Contains(t, err.Error(), "disk full")
}

func TestRenderDOCX_WritesPackage(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, RenderDOCX(&buf, anaRecord()))

	expected, err := DOCX(anaRecord())
	require.NoError(t, err)
	assert.Equal(t, expected, buf.Bytes())
}
