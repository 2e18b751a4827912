package banks

// Identifiers stay strings to keep the leading zero. Inactive entries belong to
// banks that merged; legacy IBANs still carry their codes.
var registry = []Bank{
	NewBank("05", "Alinma Bank", "مصرف الإنماء", "ALINMA", true, note("Sometimes machine-translated as “Development Bank”.")),
	NewBank("10", "Saudi National Bank (SNB)", "البنك الأهلي السعودي", "SNB", true, note("Formerly National Commercial Bank (NCB).")),
	NewBank("15", "Bank Albilad", "بنك البلاد", "ALBILAD", true, nil),
	NewBank("20", "Riyad Bank", "بنك الرياض", "RIYAD", true, nil),
	NewBank("30", "Arab National Bank", "البنك العربي الوطني", "ANB", true, nil),
	NewBank("40", "Samba Financial Group", "مجموعة سامبا المالية", "SAMBA", false, note("Merged into SNB; legacy IBANs may still contain this code.")),
	NewBank("45", "Saudi British Bank (SABB)", "البنك السعودي البريطاني", "SABB", true, nil),
	NewBank("50", "Alawwal Bank", "البنك الأول", "ALAWAL", false, note("Merged into SABB; keep for legacy IBANs.")),
	NewBank("55", "Banque Saudi Fransi", "البنك السعودي الفرنسي", "BSF", true, nil),
	NewBank("60", "Bank AlJazira", "بنك الجزيرة", "BJAZ", true, nil),
	NewBank("65", "The Saudi Investment Bank", "البنك السعودي للاستثمار", "SAIB", true, nil),
	NewBank("71", "National Bank of Bahrain (Saudi Branch)", "بنك البحرين الوطني", "NBB", true, nil),
	NewBank("75", "National Bank of Kuwait (Saudi Branch)", "بنك الكويت الوطني", "NBK", true, nil),
	NewBank("76", "Bank Muscat (Saudi Branch)", "بنك مسقط", "BMUSCAT", true, nil),
	NewBank("80", "Al Rajhi Bank", "مصرف الراجحي", "RAJHI", true, nil),
	NewBank("81", "Deutsche Bank (Saudi Branch)", "دويتشه بنك", "DEUTSCHE", true, nil),
	NewBank("82", "National Bank of Pakistan (Saudi Branch)", "البنك الوطني الباكستاني", "NBP", true, nil),
	NewBank("84", "Ziraat Bankası (Saudi Branch)", "بنك زراعات التركي", "ZIRAAT", true, nil),
	NewBank("85", "BNP Paribas (Saudi Branch)", "بي إن بي باريبا", "BNP", true, nil),
	NewBank("86", "JPMorgan Chase Bank (Saudi Branch)", "جي بي مورغان تشيس بنك", "JPM", true, nil),
	NewBank("90", "Gulf International Bank", "بنك الخليج الدولي", "GIB", true, nil),
	NewBank("95", "Emirates NBD (Emirates Bank International)", "بنك الإمارات دبي الوطني", "ENBD", true, nil),
}

func note(s string) *string {
	return &s
}
