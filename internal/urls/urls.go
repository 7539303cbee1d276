package urls

// Documentation URLs used in hints and help text.
// All point at the upstream ocrmypdf and Tesseract documentation.

// OcrmypdfDocs is the ocrmypdf documentation home.
const OcrmypdfDocs = "https://ocrmypdf.readthedocs.io/en/latest/"

// Installation covers installing ocrmypdf with Tesseract and Ghostscript
// on each platform.
const Installation = "https://ocrmypdf.readthedocs.io/en/latest/installation.html"

// Languages explains installing additional Tesseract language packs.
const Languages = "https://ocrmypdf.readthedocs.io/en/latest/languages.html"

// ExitCodes lists what each ocrmypdf exit status means.
const ExitCodes = "https://ocrmypdf.readthedocs.io/en/latest/advanced.html#return-code-policy"

// Tessdata is the repository of trained Tesseract language data.
const Tessdata = "https://github.com/tesseract-ocr/tessdata"
