package service

import (
	"encoding/json"
	"net/http"

	"github.com/fulldump/apitest"
	"github.com/fulldump/biff"
)

type JSON = map[string]interface{}

// withoutVolatile drops fields that change on every run.
func withoutVolatile(m JSON) JSON {
	delete(m, "id")
	delete(m, "created_at")
	delete(m, "capacity")
	return m
}

func Acceptance(a *biff.A, apiRequest func(method, path string) *apitest.Request) {

	a.Alternative("Create pool", func(a *biff.A) {
		resp := apiRequest("POST", "/pools").
			WithBodyJson(JSON{
				"name": "my-pool",
			}).Do()
		Save(resp, "Create pool", ``)

		biff.AssertEqual(resp.StatusCode, http.StatusCreated)
		expectedBody := JSON{
			"name":   "my-pool",
			"size":   0,
			"blocks": 0,
		}
		biff.AssertEqualJson(withoutVolatile(resp.BodyJsonMap()), expectedBody)

		a.Alternative("Retrieve pool", func(a *biff.A) {
			resp := apiRequest("GET", "/pools/my-pool").Do()
			Save(resp, "Retrieve pool", ``)

			biff.AssertEqual(resp.StatusCode, http.StatusOK)
			biff.AssertEqualJson(withoutVolatile(resp.BodyJsonMap()), expectedBody)
		})

		a.Alternative("List pools", func(a *biff.A) {
			resp := apiRequest("GET", "/pools").Do()
			Save(resp, "List pools", ``)

			biff.AssertEqual(resp.StatusCode, http.StatusOK)

			body := []JSON{}
			json.Unmarshal(resp.BodyBytes(), &body)
			biff.AssertEqual(len(body), 1)
			biff.AssertEqualJson(withoutVolatile(body[0]), expectedBody)
		})

		a.Alternative("Create pool twice", func(a *biff.A) {
			resp := apiRequest("POST", "/pools").
				WithBodyJson(JSON{
					"name": "my-pool",
				}).Do()
			Save(resp, "Create pool - already exists", ``)

			biff.AssertEqual(resp.StatusCode, http.StatusConflict)
			biff.AssertEqualJson(resp.BodyJson(), JSON{
				"error": JSON{
					"message":     "pool already exists",
					"description": "pool names must be unique",
				},
			})
		})

		a.Alternative("Drop pool", func(a *biff.A) {
			resp := apiRequest("POST", "/pools/my-pool:dropPool").
				Do()
			Save(resp, "Drop pool", ``)

			biff.AssertEqual(resp.StatusCode, http.StatusNoContent)

			a.Alternative("Get dropped pool", func(a *biff.A) {
				resp := apiRequest("GET", "/pools/my-pool").
					Do()
				Save(resp, "Get pool - not found", ``)

				biff.AssertEqual(resp.StatusCode, http.StatusNotFound)
			})
		})

		a.Alternative("Add two blocks", func(a *biff.A) {
			resp := apiRequest("POST", "/pools/my-pool:addBlock").
				WithBodyJson(JSON{"items": []int{1, 2, 3}}).Do()
			Save(resp, "Add block", `
				Appends a new block at the end of the pool and returns its handle.
			`)

			biff.AssertEqual(resp.StatusCode, http.StatusCreated)
			biff.AssertEqualJson(resp.BodyJson(), JSON{"handle": 0, "offset": 0, "length": 3})

			resp = apiRequest("POST", "/pools/my-pool:addBlock").
				WithBodyJson(JSON{"items": []int{4, 5}}).Do()

			biff.AssertEqual(resp.StatusCode, http.StatusCreated)
			biff.AssertEqualJson(resp.BodyJson(), JSON{"handle": 1, "offset": 3, "length": 2})

			a.Alternative("Append to first block", func(a *biff.A) {
				resp := apiRequest("POST", "/pools/my-pool:appendElement").
					WithBodyJson(JSON{"handle": 0, "value": 9}).Do()
				Save(resp, "Append element", `
					The element is spliced right after the last element of the
					block, every following block shifts one position.
				`)

				biff.AssertEqual(resp.StatusCode, http.StatusOK)
				biff.AssertEqualJson(resp.BodyJson(), JSON{"handle": 0, "offset": 0, "length": 4})

				resp = apiRequest("POST", "/pools/my-pool:view").Do()
				Save(resp, "View", ``)
				biff.AssertEqual(resp.Header.Get("Content-Type"), "application/x-ndjson")
				biff.AssertEqual(resp.BodyString(), "1\n2\n3\n9\n4\n5\n")

				resp = apiRequest("POST", "/pools/my-pool:listBlocks").Do()
				Save(resp, "List blocks", ``)
				biff.AssertEqualJson(resp.BodyJson(), []JSON{
					{"handle": 0, "offset": 0, "length": 4},
					{"handle": 1, "offset": 4, "length": 2},
				})

				a.Alternative("Replace first block", func(a *biff.A) {
					resp := apiRequest("POST", "/pools/my-pool:replaceBlock").
						WithBodyJson(JSON{"handle": 0, "items": []int{7, 8}}).Do()
					Save(resp, "Replace block", ``)

					biff.AssertEqual(resp.StatusCode, http.StatusOK)
					biff.AssertEqualJson(resp.BodyJson(), JSON{"handle": 0, "offset": 0, "length": 2})

					resp = apiRequest("POST", "/pools/my-pool:view").Do()
					biff.AssertEqual(resp.BodyString(), "7\n8\n4\n5\n")

					resp = apiRequest("POST", "/pools/my-pool:getBlock").
						WithBodyJson(JSON{"handle": 1}).Do()
					biff.AssertEqualJson(resp.BodyJson(), JSON{"handle": 1, "offset": 2, "length": 2, "items": []int{4, 5}})

					a.Alternative("Remove first block", func(a *biff.A) {
						resp := apiRequest("POST", "/pools/my-pool:removeBlock").
							WithBodyJson(JSON{"handle": 0}).Do()
						Save(resp, "Remove block", ``)

						biff.AssertEqual(resp.StatusCode, http.StatusOK)
						biff.AssertEqualJson(resp.BodyJson(), JSON{"handle": 0, "offset": 0, "length": 2, "items": []int{7, 8}})

						resp = apiRequest("POST", "/pools/my-pool:view").Do()
						biff.AssertEqual(resp.BodyString(), "4\n5\n")

						resp = apiRequest("POST", "/pools/my-pool:getBlock").
							WithBodyJson(JSON{"handle": 1}).Do()
						Save(resp, "Get block", ``)
						biff.AssertEqualJson(resp.BodyJson(), JSON{"handle": 1, "offset": 0, "length": 2, "items": []int{4, 5}})

						a.Alternative("Remove it again", func(a *biff.A) {
							resp := apiRequest("POST", "/pools/my-pool:removeBlock").
								WithBodyJson(JSON{"handle": 0}).Do()
							Save(resp, "Remove block - unknown handle", ``)

							biff.AssertEqual(resp.StatusCode, http.StatusNotFound)
							biff.AssertEqualJson(resp.BodyJson(), JSON{
								"error": JSON{
									"message":     "unknown handle: 0",
									"description": "handle was never issued or its block was removed",
								},
							})
						})
					})
				})
			})

			a.Alternative("Append to last block", func(a *biff.A) {
				resp := apiRequest("POST", "/pools/my-pool:appendElement").
					WithBodyJson(JSON{"handle": 1, "value": JSON{"six": 6}}).Do()

				biff.AssertEqual(resp.StatusCode, http.StatusOK)

				resp = apiRequest("POST", "/pools/my-pool:view").Do()
				biff.AssertEqual(resp.BodyString(), "1\n2\n3\n4\n5\n{\"six\":6}\n")
			})

			a.Alternative("Append without handle", func(a *biff.A) {
				resp := apiRequest("POST", "/pools/my-pool:appendElement").
					WithBodyJson(JSON{"value": 9}).Do()
				Save(resp, "Append element - missing handle", ``)

				biff.AssertEqual(resp.StatusCode, http.StatusBadRequest)
			})

			a.Alternative("Append to unknown handle", func(a *biff.A) {
				resp := apiRequest("POST", "/pools/my-pool:appendElement").
					WithBodyJson(JSON{"handle": 99, "value": 9}).Do()

				biff.AssertEqual(resp.StatusCode, http.StatusNotFound)
			})

			a.Alternative("Replace with nothing", func(a *biff.A) {
				resp := apiRequest("POST", "/pools/my-pool:replaceBlock").
					WithBodyJson(JSON{"handle": 0, "items": []int{}}).Do()

				biff.AssertEqual(resp.StatusCode, http.StatusOK)
				biff.AssertEqualJson(resp.BodyJson(), JSON{"handle": 0, "offset": 0, "length": 0})

				resp = apiRequest("POST", "/pools/my-pool:listBlocks").Do()
				biff.AssertEqualJson(resp.BodyJson(), []JSON{
					{"handle": 0, "offset": 0, "length": 0},
					{"handle": 1, "offset": 0, "length": 2},
				})
			})

			a.Alternative("View with filter", func(a *biff.A) {
				resp := apiRequest("POST", "/pools/my-pool:view").
					WithBodyJson(JSON{
						"filter": JSON{"value": 4},
					}).Do()
				Save(resp, "View - with filter", `
					Elements that are not objects are matched as {"value": element}.
				`)

				biff.AssertEqual(resp.StatusCode, http.StatusOK)
				biff.AssertEqual(resp.BodyString(), "4\n")
			})

			a.Alternative("View with skip and limit", func(a *biff.A) {
				resp := apiRequest("POST", "/pools/my-pool:view").
					WithBodyJson(JSON{"skip": 1, "limit": 2}).Do()

				biff.AssertEqual(resp.StatusCode, http.StatusOK)
				biff.AssertEqual(resp.BodyString(), "2\n3\n")
			})

			a.Alternative("Size", func(a *biff.A) {
				resp := apiRequest("POST", "/pools/my-pool:size").Do()
				Save(resp, "Size", ``)

				biff.AssertEqual(resp.StatusCode, http.StatusOK)
				body := resp.BodyJsonMap()
				biff.AssertEqualJson(body["size"], 5)
				biff.AssertEqualJson(body["blocks"], 2)
			})

			a.Alternative("Reserve", func(a *biff.A) {
				resp := apiRequest("POST", "/pools/my-pool:reserve").
					WithBodyJson(JSON{"capacity": 100}).Do()
				Save(resp, "Reserve", ``)

				biff.AssertEqual(resp.StatusCode, http.StatusOK)
				capacity, _ := resp.BodyJsonMap()["capacity"].(json.Number).Int64()
				biff.AssertTrue(capacity >= 100)
			})

			a.Alternative("Clear", func(a *biff.A) {
				resp := apiRequest("POST", "/pools/my-pool:clear").Do()
				Save(resp, "Clear", ``)

				biff.AssertEqual(resp.StatusCode, http.StatusOK)
				biff.AssertEqualJson(withoutVolatile(resp.BodyJsonMap()), expectedBody)

				resp = apiRequest("POST", "/pools/my-pool:addBlock").
					WithBodyJson(JSON{"items": []string{"again"}}).Do()
				biff.AssertEqualJson(resp.BodyJson(), JSON{"handle": 0, "offset": 0, "length": 1})
			})
		})

		a.Alternative("Add block with malformed body", func(a *biff.A) {
			resp := apiRequest("POST", "/pools/my-pool:addBlock").
				WithBodyString(`{"items": [1, 2`).Do()

			biff.AssertEqual(resp.StatusCode, http.StatusBadRequest)
		})
	})

	a.Alternative("Add block to not existing pool", func(a *biff.A) {
		resp := apiRequest("POST", "/pools/your-pool:addBlock").
			WithBodyJson(JSON{"items": []int{1}}).Do()
		Save(resp, "Add block - pool not found", ``)

		biff.AssertEqual(resp.StatusCode, http.StatusNotFound)
		errorMessage := resp.BodyJson().(JSON)["error"].(JSON)["message"].(string)
		biff.AssertEqual(errorMessage, "pool not found")
	})

	a.Alternative("Create pool without name", func(a *biff.A) {
		resp := apiRequest("POST", "/pools").
			WithBodyJson(JSON{}).Do()

		biff.AssertEqual(resp.StatusCode, http.StatusBadRequest)
	})
}
