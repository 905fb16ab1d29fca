package pipeline

// receiptPrompt is the fixed structured-extraction instruction shared by
// the cloud-vision and local-llm engines. Both expect the same JSON object
// back.
const receiptPrompt = "You are a receipt parser for Japanese store receipts.\n\n" +
	"Task:\n" +
	"- Read the attached receipt photo and extract every purchased line item.\n" +
	"- Output STRICT JSON only (no comments, no trailing commas, no extra text).\n" +
	"- Output a single JSON object.\n\n" +
	"The object must have these fields:\n" +
	"- \"store_name\": string (or empty string if unreadable)\n" +
	"- \"purchase_date\": string, ISO format \"YYYY-MM-DD\" (or empty string)\n" +
	"- \"total_amount\": number, the receipt total in yen\n" +
	"- \"tax_amount\": number, consumption tax in yen (0 if not shown)\n" +
	"- \"items\": array of objects with fields:\n" +
	"    - \"name\": string, the item name as printed\n" +
	"    - \"quantity\": number (1 if not shown)\n" +
	"    - \"price\": number, the line total in yen\n\n" +
	"Rules:\n" +
	"- The sum of items[].price MUST equal total_amount.\n" +
	"- Exclude subtotal, tax and change lines from items.\n" +
	"- Keep item names in their original language.\n\n" +
	"Return ONLY valid raw JSON.\n" +
	"Do NOT wrap the response in code fences.\n" +
	"Do NOT use ```json or any Markdown.\n" +
	"Output must begin with \"{\" and end with \"}\".\n"
