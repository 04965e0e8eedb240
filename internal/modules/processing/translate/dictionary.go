package translate

// builtinEntries is the English to Urdu word list. Each key appears once and
// carries the value that won under last-write-wins when the list was merged.
var builtinEntries = []Entry{
	{"an", "ایک"},
	{"api", "اے پی آئی"},
	{"application", "ایپلیکیشن"},
	{"interface", "انٹرفیس"},
	{"allows", "اجازت دیتا ہے"},
	{"for", "کے لیے"},
	{"two", "دو"},
	{"or", "یا"},
	{"more", "مزید"},
	{"to", "کو"},
	{"communicate", "بات چیت کرنا"},
	{"with", "کے ساتھ"},
	{"one", "ایک"},
	{"another", "دوسرے"},
	{"and", "اور"},
	{"send", "بھیجنا"},
	{"data", "ڈیٹا"},
	{"back", "واپس"},
	{"the", "دی"},
	{"server", "سرور"},
	{"there", "وہاں"},
	{"are", "ہیں"},
	{"different", "مختلف"},
	{"styles", "انداز"},
	{"each", "ہر ایک"},
	{"has", "رکھتا ہے"},
	{"its", "اس کے"},
	{"unique", "منفرد"},
	{"architecture", "فن تعمیر"},
	{"in", "میں"},
	{"this", "یہ"},
	{"article", "مضمون"},
	{"you", "آپ"},
	{"will", "گے"},
	{"learn", "سیکھیں"},
	{"basics", "بنیادی باتیں"},
	{"rest", "ریسٹ"},
	{"how", "کیسے"},
	{"they", "وہ"},
	{"work", "کام کرتے ہیں"},
	{"short", "مختصر"},
	{"from", "سے"},
	{"a", "ایک"},
	{"blog", "بلاگ"},
	{"summary", "خلاصہ"},
	{"of", "کا"},
	{"is", "ہے"},
	{"example", "مثال"},
	{"text", "متن"},
	{"generated", "تیار کیا گیا"},
	{"by", "بذریعہ"},
	{"hugging", "ہگنگ"},
	{"face", "فیس"},
	{"model", "ماڈل"},
	{"it", "یہ"},
	{"very", "بہت"},
	{"basic", "بنیادی"},
	{"translation", "ترجمہ"},
	{"quality", "معیار"},
	{"be", "ہو"},
	{"limited", "محدود"},
	{"due", "کی وجہ سے"},
	{"word", "لفظ"},
	{"substitution", "متبادل"},
	{"no", "نہیں"},
	{"context", "سیاق و سباق"},
	{"understanding", "سمجھ"},
	{"grammar", "قواعد"},
	{"rules", "قواعد"},
	{"applied", "لاگو کیا گیا"},
	{"here", "یہاں"},
	{"please", "براہ مہربانی"},
	{"note", "نوٹ کریں"},
	{"demonstration", "مظاہرے"},
	{"purposes", "مقاصد"},
	{"only", "صرف"},
	{"integral", "لازمی"},
	{"component", "جز"},
	{"software", "سافٹ ویئر"},
	{"development", "ترقی"},
	{"operated", "چلایا جاتا ہے"},
	{"based", "بنیاد پر"},
	{"standardized", "معیاری"},
	{"set", "سیٹ"},
	{"most", "سب سے زیادہ"},
	{"common", "عام"},
	{"apis", "اے پی آئیز"},
}
