package answer

import "testing"

func TestSplitSentencesOffsets(t *testing.T) {
	sentences := splitSentences("Birinci cümle. İkinci cümle!  Üçüncü?")
	if len(sentences) != 3 {
		t.Fatalf("expected 3 sentences, got %d", len(sentences))
	}
	if sentences[0].text != "Birinci cümle" || sentences[0].start != 0 || sentences[0].end != 13 {
		t.Fatalf("unexpected first sentence: %+v", sentences[0])
	}
	if sentences[1].text != "İkinci cümle" || sentences[1].start != 15 {
		t.Fatalf("unexpected second sentence: %+v", sentences[1])
	}
	if sentences[2].text != "Üçüncü" {
		t.Fatalf("unexpected third sentence: %+v", sentences[2])
	}
}

func TestSplitSentencesDropsEmptyPieces(t *testing.T) {
	sentences := splitSentences("Soru?!  . Cevap.")
	if len(sentences) != 2 {
		t.Fatalf("expected 2 sentences, got %d: %+v", len(sentences), sentences)
	}
	if sentences[0].text != "Soru" || sentences[1].text != "Cevap" {
		t.Fatalf("unexpected sentences: %+v", sentences)
	}
}

func TestSelectBestPrefersAllTerms(t *testing.T) {
	text := "Kayıt eylülde başlar. Kayıt formu eylülde teslim edilir. Form örneği sitededir."
	sent, ok := selectBest(text, []string{"kayıt", "formu"})
	if !ok || sent.text != "Kayıt formu eylülde teslim edilir" {
		t.Fatalf("expected the sentence with both terms, got %+v", sent)
	}
}

func TestSelectBestTieBreaksShorter(t *testing.T) {
	text := "Kayıt formu burada teslim edilir ve onaylanır. Kayıt formu buradadır."
	sent, _ := selectBest(text, []string{"kayıt", "formu"})
	if sent.text != "Kayıt formu buradadır" {
		t.Fatalf("expected shorter sentence, got %q", sent.text)
	}
}

func TestSelectBestNoTermMatchFallsBackToFirst(t *testing.T) {
	text := "Yemekhane saat onikide açılır. Menü panoda asılıdır."
	sent, ok := selectBest(text, []string{"kayıt"})
	if !ok || sent.text != "Yemekhane saat onikide açılır" {
		t.Fatalf("expected first sentence fallback, got %+v", sent)
	}
}

func TestSelectBestEmptyText(t *testing.T) {
	if _, ok := selectBest("   ", []string{"kayıt"}); ok {
		t.Fatalf("expected no sentence for whitespace-only text")
	}
}
