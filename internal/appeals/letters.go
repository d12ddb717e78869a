package appeals

import (
	"strings"
	"text/template"
)

// letterFields are the values substituted into the appeal templates.
type letterFields struct {
	CitizenName     string
	City            string
	State           string
	SchemeName      string
	Ministry        string
	ApplicationID   string
	RejectionReason string
	Precedent       string
	Category        string
	AnnualIncome    string
	MaskedAadhaar   string
	Date            string
}

var englishLetter = template.Must(template.New("english").Parse(`APPEAL AGAINST REJECTION OF APPLICATION

To,
The Competent Authority / Appellate Officer,
{{.Ministry}},
Government of India.

Subject: Appeal against rejection of application for {{.SchemeName}}
         (Application No.: {{.ApplicationID}})

Respected Sir/Madam,

I, {{.CitizenName}}, a citizen of India, residing at {{.City}}, {{.State}}, respectfully submit this appeal against the rejection of my application for the {{.SchemeName}} scheme.

My application (Reference: {{.ApplicationID}}) was rejected on the following grounds:
"{{.RejectionReason}}"

I respectfully submit that this rejection is unjustified for the following reasons:

1. All required documents were submitted as per the scheme guidelines.
2. My eligibility criteria as specified under the scheme provisions are fully met.
3. {{.Precedent}}

I humbly request that my application be reconsidered in light of the above facts and the attached supporting documents.

I am a {{.Category}} category applicant with an annual family income of Rs. {{.AnnualIncome}}, and I meet all the prescribed eligibility conditions for this scheme.

I pray that this Hon'ble authority may kindly reconsider my application and pass appropriate orders.

Thanking you,

{{.CitizenName}}
Aadhaar: {{.MaskedAadhaar}}
Date: {{.Date}}
Place: {{.City}}

Enclosures:
1. Copy of rejection letter
2. All originally submitted documents
3. Supporting documents addressing rejection grounds
`))

var hindiLetter = template.Must(template.New("hindi").Parse(`अपील - आवेदन अस्वीकृति के विरुद्ध

सेवा में,
सक्षम प्राधिकारी / अपीलीय अधिकारी,
{{.Ministry}},
भारत सरकार।

विषय: {{.SchemeName}} योजना के आवेदन अस्वीकृति के विरुद्ध अपील
       (आवेदन संख्या: {{.ApplicationID}})

महोदय/महोदया,

मैं, {{.CitizenName}}, भारत का नागरिक, {{.City}}, {{.State}} का निवासी, {{.SchemeName}} योजना के तहत मेरे आवेदन की अस्वीकृति के विरुद्ध यह अपील प्रस्तुत करता/करती हूँ।

मेरा आवेदन (संदर्भ: {{.ApplicationID}}) निम्नलिखित आधार पर अस्वीकार किया गया:
"{{.RejectionReason}}"

मैं नम्रतापूर्वक निवेदन करता/करती हूँ कि यह अस्वीकृति अन्यायपूर्ण है।

मैं प्रार्थना करता/करती हूँ कि कृपया मेरे आवेदन पर पुनर्विचार किया जाए।

धन्यवाद,

{{.CitizenName}}
आधार: {{.MaskedAadhaar}}
दिनांक: {{.Date}}
स्थान: {{.City}}
`))

// renderLetter executes the template for the requested language.
func renderLetter(language string, fields letterFields) (string, error) {
	tmpl := englishLetter
	if language == "hindi" {
		tmpl = hindiLetter
	}
	var out strings.Builder
	if err := tmpl.Execute(&out, fields); err != nil {
		return "", err
	}
	return out.String(), nil
}
