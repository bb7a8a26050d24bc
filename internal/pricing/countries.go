package pricing

// CountryInfo is one row of the static country -> currency table. Rate is the
// USD exchange rate used when no fixed local price exists. FixedIndividual
// and FixedBusiness are local-currency overrides; zero means "no override"
// (no market on the list prices anything at zero).
type CountryInfo struct {
	Country         string  `json:"country"`
	Currency        string  `json:"currency"`
	Symbol          string  `json:"symbol"`
	Rate            float64 `json:"rate"`
	FixedIndividual float64 `json:"fixedIndividual,omitempty"`
	FixedBusiness   float64 `json:"fixedBusiness,omitempty"`
	DialCode        string  `json:"dialCode"`
}

// Countries is the canonical pricing table.
var Countries = []CountryInfo{
	{Country: "Afghanistan", Currency: "AFN", Symbol: "؋", Rate: 71.0, DialCode: "+93"},
	{Country: "Albania", Currency: "ALL", Symbol: "L", Rate: 93.0, DialCode: "+355"},
	{Country: "Algeria", Currency: "DZD", Symbol: "د.ج", Rate: 134.0, DialCode: "+213"},
	{Country: "Andorra", Currency: "EUR", Symbol: "€", Rate: 0.92, DialCode: "+376"},
	{Country: "Angola", Currency: "AOA", Symbol: "Kz", Rate: 830.0, DialCode: "+244"},
	{Country: "Argentina", Currency: "ARS", Symbol: "$", Rate: 850.0, DialCode: "+54"},
	{Country: "Australia", Currency: "AUD", Symbol: "$", Rate: 1.52, DialCode: "+61"},
	{Country: "Austria", Currency: "EUR", Symbol: "€", Rate: 0.92, DialCode: "+43"},
	{Country: "Bahrain", Currency: "BHD", Symbol: ".د.ب", Rate: 0.38, FixedIndividual: 10, FixedBusiness: 90, DialCode: "+973"},
	{Country: "Bangladesh", Currency: "BDT", Symbol: "৳", Rate: 110.0, DialCode: "+880"},
	{Country: "Belgium", Currency: "EUR", Symbol: "€", Rate: 0.92, DialCode: "+32"},
	{Country: "Brazil", Currency: "BRL", Symbol: "R$", Rate: 4.97, DialCode: "+55"},
	{Country: "Canada", Currency: "CAD", Symbol: "$", Rate: 1.35, DialCode: "+1"},
	{Country: "China", Currency: "CNY", Symbol: "¥", Rate: 7.2, DialCode: "+86"},
	{Country: "Denmark", Currency: "DKK", Symbol: "kr", Rate: 6.8, DialCode: "+45"},
	{Country: "Egypt", Currency: "EGP", Symbol: "£", Rate: 47.0, DialCode: "+20"},
	{Country: "Finland", Currency: "EUR", Symbol: "€", Rate: 0.92, DialCode: "+358"},
	{Country: "France", Currency: "EUR", Symbol: "€", Rate: 0.92, DialCode: "+33"},
	{Country: "Germany", Currency: "EUR", Symbol: "€", Rate: 0.92, DialCode: "+49"},
	{Country: "Greece", Currency: "EUR", Symbol: "€", Rate: 0.92, DialCode: "+30"},
	{Country: "India", Currency: "INR", Symbol: "₹", Rate: 83.0, DialCode: "+91"},
	{Country: "Indonesia", Currency: "IDR", Symbol: "Rp", Rate: 15500.0, DialCode: "+62"},
	{Country: "Ireland", Currency: "EUR", Symbol: "€", Rate: 0.92, DialCode: "+353"},
	{Country: "Italy", Currency: "EUR", Symbol: "€", Rate: 0.92, DialCode: "+39"},
	{Country: "Japan", Currency: "JPY", Symbol: "¥", Rate: 150.0, DialCode: "+81"},
	{Country: "Kuwait", Currency: "KWD", Symbol: "د.ك", Rate: 0.31, DialCode: "+965"},
	{Country: "Mexico", Currency: "MXN", Symbol: "$", Rate: 16.7, DialCode: "+52"},
	{Country: "Netherlands", Currency: "EUR", Symbol: "€", Rate: 0.92, DialCode: "+31"},
	{Country: "New Zealand", Currency: "NZD", Symbol: "$", Rate: 1.65, DialCode: "+64"},
	{Country: "Norway", Currency: "NOK", Symbol: "kr", Rate: 10.5, DialCode: "+47"},
	{Country: "Pakistan", Currency: "PKR", Symbol: "Rs", Rate: 278.0, FixedIndividual: 500, FixedBusiness: 2500, DialCode: "+92"},
	{Country: "Philippines", Currency: "PHP", Symbol: "₱", Rate: 56.0, DialCode: "+63"},
	{Country: "Poland", Currency: "PLN", Symbol: "zł", Rate: 3.95, DialCode: "+48"},
	{Country: "Portugal", Currency: "EUR", Symbol: "€", Rate: 0.92, DialCode: "+351"},
	{Country: "Qatar", Currency: "QAR", Symbol: "ر.ق", Rate: 3.64, FixedIndividual: 10, FixedBusiness: 90, DialCode: "+974"},
	{Country: "Russia", Currency: "RUB", Symbol: "₽", Rate: 92.0, DialCode: "+7"},
	{Country: "Saudi Arabia", Currency: "SAR", Symbol: "ر.س", Rate: 3.75, FixedIndividual: 10, FixedBusiness: 90, DialCode: "+966"},
	{Country: "Singapore", Currency: "SGD", Symbol: "$", Rate: 1.34, DialCode: "+65"},
	{Country: "South Africa", Currency: "ZAR", Symbol: "R", Rate: 18.8, DialCode: "+27"},
	{Country: "South Korea", Currency: "KRW", Symbol: "₩", Rate: 1330.0, DialCode: "+82"},
	{Country: "Spain", Currency: "EUR", Symbol: "€", Rate: 0.92, DialCode: "+34"},
	{Country: "Sweden", Currency: "SEK", Symbol: "kr", Rate: 10.3, DialCode: "+46"},
	{Country: "Switzerland", Currency: "CHF", Symbol: "Fr", Rate: 0.88, DialCode: "+41"},
	{Country: "Thailand", Currency: "THB", Symbol: "฿", Rate: 35.5, DialCode: "+66"},
	{Country: "Turkey", Currency: "TRY", Symbol: "₺", Rate: 32.0, DialCode: "+90"},
	{Country: "United Arab Emirates", Currency: "AED", Symbol: "د.إ", Rate: 3.67, FixedIndividual: 10, FixedBusiness: 90, DialCode: "+971"},
	{Country: "United Kingdom", Currency: "GBP", Symbol: "£", Rate: 0.79, DialCode: "+44"},
	{Country: "United States", Currency: "USD", Symbol: "$", Rate: 1.0, FixedIndividual: 5, FixedBusiness: 40, DialCode: "+1"},
	{Country: "Vietnam", Currency: "VND", Symbol: "₫", Rate: 24500.0, DialCode: "+84"},
}
