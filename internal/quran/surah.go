package quran

// RevelationType is where a surah was revealed.
type RevelationType string

const (
	Meccan  RevelationType = "meccan"
	Medinan RevelationType = "medinan"
)

// Surah describes one chapter and the page it starts on.
type Surah struct {
	Number      int
	Name        string
	EnglishName string
	Verses      int
	StartPage   int
	Type        RevelationType
}

var surahs = []Surah{
	{1, "الفاتحة", "Al-Fatiha", 7, 1, Meccan},
	{2, "البقرة", "Al-Baqarah", 286, 2, Medinan},
	{3, "آل عمران", "Aal-E-Imran", 200, 50, Medinan},
	{4, "النساء", "An-Nisa", 176, 77, Medinan},
	{5, "المائدة", "Al-Ma'idah", 120, 106, Medinan},
	{6, "الأنعام", "Al-An'am", 165, 128, Meccan},
	{7, "الأعراف", "Al-A'raf", 206, 151, Meccan},
	{8, "الأنفال", "Al-Anfal", 75, 177, Medinan},
	{9, "التوبة", "At-Tawbah", 129, 187, Medinan},
	{10, "يونس", "Yunus", 109, 208, Meccan},
	{11, "هود", "Hud", 123, 221, Meccan},
	{12, "يوسف", "Yusuf", 111, 235, Meccan},
	{13, "الرعد", "Ar-Ra'd", 43, 249, Medinan},
	{14, "إبراهيم", "Ibrahim", 52, 255, Meccan},
	{15, "الحجر", "Al-Hijr", 99, 262, Meccan},
	{16, "النحل", "An-Nahl", 128, 267, Meccan},
	{17, "الإسراء", "Al-Isra", 111, 282, Meccan},
	{18, "الكهف", "Al-Kahf", 110, 293, Meccan},
	{19, "مريم", "Maryam", 98, 305, Meccan},
	{20, "طه", "Ta-Ha", 135, 312, Meccan},
	{21, "الأنبياء", "Al-Anbiya", 112, 322, Meccan},
	{22, "الحج", "Al-Hajj", 78, 332, Medinan},
	{23, "المؤمنون", "Al-Mu'minun", 118, 342, Meccan},
	{24, "النور", "An-Nur", 64, 350, Medinan},
	{25, "الفرقان", "Al-Furqan", 77, 359, Meccan},
	{26, "الشعراء", "Ash-Shu'ara", 227, 367, Meccan},
	{27, "النمل", "An-Naml", 93, 377, Meccan},
	{28, "القصص", "Al-Qasas", 88, 385, Meccan},
	{29, "العنكبوت", "Al-Ankabut", 69, 396, Meccan},
	{30, "الروم", "Ar-Rum", 60, 404, Meccan},
	{31, "لقمان", "Luqman", 34, 411, Meccan},
	{32, "السجدة", "As-Sajdah", 30, 415, Meccan},
	{33, "الأحزاب", "Al-Ahzab", 73, 418, Medinan},
	{34, "سبأ", "Saba", 54, 428, Meccan},
	{35, "فاطر", "Fatir", 45, 434, Meccan},
	{36, "يس", "Ya-Sin", 83, 440, Meccan},
	{37, "الصافات", "As-Saffat", 182, 446, Meccan},
	{38, "ص", "Sad", 88, 453, Meccan},
	{39, "الزمر", "Az-Zumar", 75, 458, Meccan},
	{40, "غافر", "Ghafir", 85, 467, Meccan},
	{41, "فصلت", "Fussilat", 54, 477, Meccan},
	{42, "الشورى", "Ash-Shura", 53, 483, Meccan},
	{43, "الزخرف", "Az-Zukhruf", 89, 489, Meccan},
	{44, "الدخان", "Ad-Dukhan", 59, 496, Meccan},
	{45, "الجاثية", "Al-Jathiyah", 37, 499, Meccan},
	{46, "الأحقاف", "Al-Ahqaf", 35, 502, Meccan},
	{47, "محمد", "Muhammad", 38, 507, Medinan},
	{48, "الفتح", "Al-Fath", 29, 511, Medinan},
	{49, "الحجرات", "Al-Hujurat", 18, 515, Medinan},
	{50, "ق", "Qaf", 45, 518, Meccan},
	{51, "الذاريات", "Adh-Dhariyat", 60, 520, Meccan},
	{52, "الطور", "At-Tur", 49, 523, Meccan},
	{53, "النجم", "An-Najm", 62, 526, Meccan},
	{54, "القمر", "Al-Qamar", 55, 528, Meccan},
	{55, "الرحمن", "Ar-Rahman", 78, 531, Medinan},
	{56, "الواقعة", "Al-Waqi'ah", 96, 534, Meccan},
	{57, "الحديد", "Al-Hadid", 29, 537, Medinan},
	{58, "المجادلة", "Al-Mujadilah", 22, 542, Medinan},
	{59, "الحشر", "Al-Hashr", 24, 545, Medinan},
	{60, "الممتحنة", "Al-Mumtahanah", 13, 549, Medinan},
	{61, "الصف", "As-Saff", 14, 551, Medinan},
	{62, "الجمعة", "Al-Jumu'ah", 11, 553, Medinan},
	{63, "المنافقون", "Al-Munafiqun", 11, 554, Medinan},
	{64, "التغابن", "At-Taghabun", 18, 556, Medinan},
	{65, "الطلاق", "At-Talaq", 12, 558, Medinan},
	{66, "التحريم", "At-Tahrim", 12, 560, Medinan},
	{67, "الملك", "Al-Mulk", 30, 562, Meccan},
	{68, "القلم", "Al-Qalam", 52, 564, Meccan},
	{69, "الحاقة", "Al-Haqqah", 52, 566, Meccan},
	{70, "المعارج", "Al-Ma'arij", 44, 568, Meccan},
	{71, "نوح", "Nuh", 28, 570, Meccan},
	{72, "الجن", "Al-Jinn", 28, 572, Meccan},
	{73, "المزمل", "Al-Muzzammil", 20, 574, Meccan},
	{74, "المدثر", "Al-Muddaththir", 56, 575, Meccan},
	{75, "القيامة", "Al-Qiyamah", 40, 577, Meccan},
	{76, "الإنسان", "Al-Insan", 31, 578, Medinan},
	{77, "المرسلات", "Al-Mursalat", 50, 580, Meccan},
	{78, "النبأ", "An-Naba", 40, 582, Meccan},
	{79, "النازعات", "An-Nazi'at", 46, 583, Meccan},
	{80, "عبس", "Abasa", 42, 585, Meccan},
	{81, "التكوير", "At-Takwir", 29, 586, Meccan},
	{82, "الانفطار", "Al-Infitar", 19, 587, Meccan},
	{83, "المطففين", "Al-Mutaffifin", 36, 587, Meccan},
	{84, "الانشقاق", "Al-Inshiqaq", 25, 589, Meccan},
	{85, "البروج", "Al-Buruj", 22, 590, Meccan},
	{86, "الطارق", "At-Tariq", 17, 591, Meccan},
	{87, "الأعلى", "Al-A'la", 19, 591, Meccan},
	{88, "الغاشية", "Al-Ghashiyah", 26, 592, Meccan},
	{89, "الفجر", "Al-Fajr", 30, 593, Meccan},
	{90, "البلد", "Al-Balad", 20, 594, Meccan},
	{91, "الشمس", "Ash-Shams", 15, 595, Meccan},
	{92, "الليل", "Al-Layl", 21, 595, Meccan},
	{93, "الضحى", "Ad-Duha", 11, 596, Meccan},
	{94, "الشرح", "Ash-Sharh", 8, 596, Meccan},
	{95, "التين", "At-Tin", 8, 597, Meccan},
	{96, "العلق", "Al-Alaq", 19, 597, Meccan},
	{97, "القدر", "Al-Qadr", 5, 598, Meccan},
	{98, "البينة", "Al-Bayyinah", 8, 598, Medinan},
	{99, "الزلزلة", "Az-Zalzalah", 8, 599, Medinan},
	{100, "العاديات", "Al-Adiyat", 11, 599, Meccan},
	{101, "القارعة", "Al-Qari'ah", 11, 600, Meccan},
	{102, "التكاثر", "At-Takathur", 8, 600, Meccan},
	{103, "العصر", "Al-Asr", 3, 601, Meccan},
	{104, "الهمزة", "Al-Humazah", 9, 601, Meccan},
	{105, "الفيل", "Al-Fil", 5, 601, Meccan},
	{106, "قريش", "Quraysh", 4, 602, Meccan},
	{107, "الماعون", "Al-Ma'un", 7, 602, Meccan},
	{108, "الكوثر", "Al-Kawthar", 3, 602, Meccan},
	{109, "الكافرون", "Al-Kafirun", 6, 603, Meccan},
	{110, "النصر", "An-Nasr", 3, 603, Medinan},
	{111, "المسد", "Al-Masad", 5, 603, Meccan},
	{112, "الإخلاص", "Al-Ikhlas", 4, 604, Meccan},
	{113, "الفلق", "Al-Falaq", 5, 604, Meccan},
	{114, "الناس", "An-Nas", 6, 604, Meccan},
}

// Surahs returns all 114 surahs in mushaf order.
func Surahs() []Surah {
	result := make([]Surah, len(surahs))
	copy(result, surahs)
	return result
}

// SurahByPage returns the last surah that starts on or before page.
// Pages before the first surah resolve to Al-Fatiha.
func SurahByPage(page int) Surah {
	for i := len(surahs) - 1; i >= 0; i-- {
		if surahs[i].StartPage <= page {
			return surahs[i]
		}
	}
	return surahs[0]
}
