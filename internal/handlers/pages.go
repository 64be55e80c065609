package handlers

import "net/http"

// Home is always reachable, logged in or not.
func Home(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"title": "Smart Investment Advisor",
		"message": "Predict your financial risk profile and get personalized stock " +
			"recommendations based on your risk. Please login to access prediction features.",
	})
}

// About is reachable by authenticated users only.
func About(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"title": "About This App",
		"message": "This service uses a pretrained machine learning model to predict an " +
			"investor's financial risk rating from personal and financial inputs. Once the " +
			"risk is assessed as Low, Medium or High, it recommends stocks from a curated " +
			"list and suggests a counter-strategy to balance risk.",
	})
}
